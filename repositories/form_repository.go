package repositories

import (
	"context"
	"errors"
	"strings"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"
	"formbuilder.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IFormRepository form veritabanı işlemleri için arayüz.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Form, error)
	FindBySlugForShare(ctx context.Context, slug string) (*models.Form, error)
	FindSchemaByID(ctx context.Context, id uint) (*models.Form, error)
	FindSchemaBySlug(ctx context.Context, slug string) (*models.Form, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error)
	Update(ctx context.Context, form *models.Form) error
	Delete(ctx context.Context, id uint) error
}

// FormRepository IFormRepository arayüzünü uygular.
type FormRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Form]
}

// NewFormRepository yeni bir FormRepository örneği oluşturur.
func NewFormRepository(db *gorm.DB) IFormRepository {
	base := NewBaseRepository[models.Form](db)
	base.SetAllowedSortColumns([]string{"id", "name", "status", "created_at", "updated_at"})
	return &FormRepository{db: db, base: base}
}

// NewFormRepositoryTx transaction içinde çalışan repository.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	return NewFormRepository(tx)
}

func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// orderedBySortOrder sıralı ilişkiler için preload koşulu.
func orderedBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc, id asc")
}

// withSchema formun bölümlerini, alanlarını ve alan tiplerini sıralı yükler.
func withSchema(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sections", orderedBySortOrder).
		Preload("Sections.Fields", orderedBySortOrder).
		Preload("Sections.Fields.FieldType").
		Preload("Fields", orderedBySortOrder).
		Preload("Fields.FieldType")
}

func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil || form.Slug == "" {
		return errors.New("slug'ı olmayan form oluşturulamaz")
	}
	return r.base.Create(ctx, form)
}

// FindByID sadece ana form kaydını bulur.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	form, err := r.base.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		configslog.Log.Error("FormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return form, err
}

// FindByIDForUpdate form satırını kilitler; sıra tahsisi bu kilit altında yapılır.
func (r *FormRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Form, error) {
	form, err := r.base.FindByIDForUpdate(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		configslog.Log.Error("FormRepository.FindByIDForUpdate: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return form, err
}

// FindBySlugForShare formu paylaşımlı kilitle okur. Şema düzenlemeleri
// FOR UPDATE aldığından gönderimler yarım kalmış bir silmeyi göremez.
func (r *FormRepository) FindBySlugForShare(ctx context.Context, slug string) (*models.Form, error) {
	var form models.Form
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "SHARE"}).Where("slug = ?", slug).First(&form).Error
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("FormRepository.FindBySlugForShare: DB error", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}
	return &form, nil
}

// FindSchemaByID formu tüm şemasıyla birlikte getirir.
func (r *FormRepository) FindSchemaByID(ctx context.Context, id uint) (*models.Form, error) {
	var form models.Form
	err := withSchema(r.getDB(ctx)).First(&form, id).Error
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("FormRepository.FindSchemaByID: DB error", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) FindSchemaBySlug(ctx context.Context, slug string) (*models.Form, error) {
	var form models.Form
	err := withSchema(r.getDB(ctx)).Where("slug = ?", slug).First(&form).Error
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("FormRepository.FindSchemaBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Form{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		configslog.Log.Error("FormRepository.SlugExists: DB error", zap.String("slug", slug), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// applyFormFilters ad ve durum filtrelerini uygular.
func (r *FormRepository) applyFormFilters(db *gorm.DB, params queryparams.ListParams) *gorm.DB {
	query := db
	if params.Name != "" {
		query = query.Where("LOWER(forms.name) LIKE ?", "%"+strings.ToLower(params.Name)+"%")
	}
	if params.Status != "" {
		query = query.Where("forms.status = ?", params.Status)
	}
	return query
}

// FindAllPaginated formları sayfalayarak bulur.
func (r *FormRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error) {
	var forms []models.Form
	var totalCount int64

	countQuery := r.applyFormFilters(r.getDB(ctx).Model(&models.Form{}), params)
	if err := countQuery.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("FormRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return []models.Form{}, 0, nil
	}

	err := r.applyFormFilters(r.getDB(ctx), params).
		Order(r.base.OrderClause(params.SortBy, params.OrderBy, "created_at")).
		Order("id desc").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return forms, totalCount, nil
}

// Update ana form kaydını günceller.
func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek form geçerli değil")
	}
	return r.base.Save(ctx, form)
}

// Delete form satırını siler. Bağlı kayıtlar servis katmanında önceden silinir.
func (r *FormRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.base.DeleteByID(ctx, id)
	if err != nil {
		configslog.Log.Error("FormRepository.Delete: DB error", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
