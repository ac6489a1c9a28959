package repositories

import (
	"context"
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormFieldRepository form alanı veritabanı işlemleri.
type IFormFieldRepository interface {
	Create(ctx context.Context, field *models.FormField) error
	FindByID(ctx context.Context, id uint) (*models.FormField, error)
	FindAllByFormID(ctx context.Context, formID uint) ([]models.FormField, error)
	MaxOrder(ctx context.Context, formID uint) (int, error)
	Update(ctx context.Context, field *models.FormField) error
	UpdateOrder(ctx context.Context, formID, fieldID uint, order int) (int64, error)
	ClearSection(ctx context.Context, sectionID uint) error
	Delete(ctx context.Context, id uint) error
	DeleteByFormID(ctx context.Context, formID uint) error
}

type FormFieldRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.FormField]
}

func NewFormFieldRepository(db *gorm.DB) IFormFieldRepository {
	return &FormFieldRepository{db: db, base: NewBaseRepository[models.FormField](db)}
}

func NewFormFieldRepositoryTx(tx *gorm.DB) IFormFieldRepository {
	return NewFormFieldRepository(tx)
}

func (r *FormFieldRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *FormFieldRepository) Create(ctx context.Context, field *models.FormField) error {
	if field == nil || field.FormID == 0 || field.FieldTypeID == 0 {
		return errors.New("formu veya tipi olmayan alan oluşturulamaz")
	}
	return r.base.Create(ctx, field)
}

// FindByID alanı tipiyle birlikte getirir.
func (r *FormFieldRepository) FindByID(ctx context.Context, id uint) (*models.FormField, error) {
	var field models.FormField
	err := r.getDB(ctx).Preload("FieldType").First(&field, id).Error
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("FormFieldRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &field, nil
}

// FindAllByFormID formun alanlarını sıralı ve tipleriyle döner.
func (r *FormFieldRepository) FindAllByFormID(ctx context.Context, formID uint) ([]models.FormField, error) {
	var fields []models.FormField
	err := r.getDB(ctx).Preload("FieldType").
		Where("form_id = ?", formID).
		Order("sort_order asc, id asc").
		Find(&fields).Error
	if err != nil {
		configslog.Log.Error("FormFieldRepository.FindAllByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
		return nil, err
	}
	return fields, nil
}

// MaxOrder formdaki en büyük alan sırası; alan yoksa 0.
func (r *FormFieldRepository) MaxOrder(ctx context.Context, formID uint) (int, error) {
	var maxOrder int
	err := r.getDB(ctx).Model(&models.FormField{}).
		Where("form_id = ?", formID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		configslog.Log.Error("FormFieldRepository.MaxOrder: DB error", zap.Uint("form_id", formID), zap.Error(err))
	}
	return maxOrder, err
}

func (r *FormFieldRepository) Update(ctx context.Context, field *models.FormField) error {
	if field == nil || field.ID == 0 {
		return errors.New("güncellenecek alan geçerli değil")
	}
	return r.base.Save(ctx, field)
}

// UpdateOrder sadece verilen forma ait alanın sırasını değiştirir.
// Etkilenen satır sayısı 0 ise alan bu forma ait değildir.
func (r *FormFieldRepository) UpdateOrder(ctx context.Context, formID, fieldID uint, order int) (int64, error) {
	result := r.getDB(ctx).Model(&models.FormField{}).
		Where("id = ? AND form_id = ?", fieldID, formID).
		Update("sort_order", order)
	if result.Error != nil {
		configslog.Log.Error("FormFieldRepository.UpdateOrder: DB error",
			zap.Uint("form_id", formID), zap.Uint("field_id", fieldID), zap.Error(result.Error))
	}
	return result.RowsAffected, result.Error
}

// ClearSection bölüme bağlı alanları bölümsüz bırakır.
func (r *FormFieldRepository) ClearSection(ctx context.Context, sectionID uint) error {
	err := r.getDB(ctx).Model(&models.FormField{}).
		Where("section_id = ?", sectionID).
		Update("section_id", nil).Error
	if err != nil {
		configslog.Log.Error("FormFieldRepository.ClearSection: DB error", zap.Uint("section_id", sectionID), zap.Error(err))
	}
	return err
}

func (r *FormFieldRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.base.DeleteByID(ctx, id)
	if err != nil {
		configslog.Log.Error("FormFieldRepository.Delete: DB error", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FormFieldRepository) DeleteByFormID(ctx context.Context, formID uint) error {
	err := r.getDB(ctx).Where("form_id = ?", formID).Delete(&models.FormField{}).Error
	if err != nil {
		configslog.Log.Error("FormFieldRepository.DeleteByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
	}
	return err
}
