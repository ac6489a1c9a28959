package repositories

import (
	"context"
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFieldTypeRepository alan tipi kataloğu veritabanı işlemleri.
type IFieldTypeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.FieldType, error)
	FindByName(ctx context.Context, name string) (*models.FieldType, error)
	FindAllActive(ctx context.Context) ([]models.FieldType, error)
	FindAll(ctx context.Context) ([]models.FieldType, error)
	Create(ctx context.Context, fieldType *models.FieldType) error
	CountFieldReferences(ctx context.Context, id uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// FieldTypeRepository IFieldTypeRepository arayüzünü uygular.
type FieldTypeRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.FieldType]
}

func NewFieldTypeRepository(db *gorm.DB) IFieldTypeRepository {
	return &FieldTypeRepository{db: db, base: NewBaseRepository[models.FieldType](db)}
}

// NewFieldTypeRepositoryTx transaction içinde çalışan repository.
func NewFieldTypeRepositoryTx(tx *gorm.DB) IFieldTypeRepository {
	return NewFieldTypeRepository(tx)
}

func (r *FieldTypeRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *FieldTypeRepository) FindByID(ctx context.Context, id uint) (*models.FieldType, error) {
	fieldType, err := r.base.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		configslog.Log.Error("FieldTypeRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return fieldType, err
}

func (r *FieldTypeRepository) FindByName(ctx context.Context, name string) (*models.FieldType, error) {
	var fieldType models.FieldType
	err := r.getDB(ctx).Where("name = ?", name).First(&fieldType).Error
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("FieldTypeRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		}
		return nil, err
	}
	return &fieldType, nil
}

// FindAllActive aktif alan tiplerini isme göre sıralı döner.
func (r *FieldTypeRepository) FindAllActive(ctx context.Context) ([]models.FieldType, error) {
	var fieldTypes []models.FieldType
	err := r.getDB(ctx).Where("is_active = ?", true).Order("name asc").Find(&fieldTypes).Error
	if err != nil {
		configslog.Log.Error("FieldTypeRepository.FindAllActive: DB error", zap.Error(err))
		return nil, err
	}
	return fieldTypes, nil
}

func (r *FieldTypeRepository) FindAll(ctx context.Context) ([]models.FieldType, error) {
	var fieldTypes []models.FieldType
	err := r.getDB(ctx).Order("name asc").Find(&fieldTypes).Error
	if err != nil {
		configslog.Log.Error("FieldTypeRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return fieldTypes, nil
}

func (r *FieldTypeRepository) Create(ctx context.Context, fieldType *models.FieldType) error {
	return r.base.Create(ctx, fieldType)
}

// CountFieldReferences bu tipi kullanan form alanı sayısı.
func (r *FieldTypeRepository) CountFieldReferences(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.FormField{}).Where("field_type_id = ?", id).Count(&count).Error
	if err != nil {
		configslog.Log.Error("FieldTypeRepository.CountFieldReferences: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return count, err
}

func (r *FieldTypeRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.base.DeleteByID(ctx, id)
	if err != nil {
		configslog.Log.Error("FieldTypeRepository.Delete: DB error", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
