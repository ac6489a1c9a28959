package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndüğü hata.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm modeller için ortak CRUD işlemleri.
type IBaseRepository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
	OrderClause(sortBy, orderBy, fallback string) string
}

// BaseRepository IBaseRepository'nin gorm ile genel uygulaması.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]struct{}
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]struct{}{}}
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// translateError gorm.ErrRecordNotFound hatasını ErrNotFound'a çevirir.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.getDB(ctx).First(&entity, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// FindByIDForUpdate kaydı SELECT ... FOR UPDATE ile kilitleyerek okur.
// Transaction dışında çağrıldığında kilit anında bırakılır.
func (r *BaseRepository[T]) FindByIDForUpdate(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&entity, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// Create ilişkileri yazmadan sadece ana kaydı ekler.
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Omit(clause.Associations).Create(entity).Error
}

// Save tüm sütunları günceller, ilişkilere dokunmaz.
func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id uint) (int64, error) {
	var entity T
	result := r.getDB(ctx).Delete(&entity, id)
	return result.RowsAffected, result.Error
}

func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var entity T
	err := r.getDB(ctx).Model(&entity).Count(&count).Error
	return count, err
}

func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]struct{}, len(columns))
	for _, col := range columns {
		r.allowedSortColumns[col] = struct{}{}
	}
}

// OrderClause izinli sütunlar için "col asc|desc" döner, aksi halde fallback sütununu kullanır.
func (r *BaseRepository[T]) OrderClause(sortBy, orderBy, fallback string) string {
	column := fallback
	if _, ok := r.allowedSortColumns[sortBy]; ok {
		column = sortBy
	}
	direction := strings.ToLower(orderBy)
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}
	return column + " " + direction
}
