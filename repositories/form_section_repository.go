package repositories

import (
	"context"
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormSectionRepository form bölümü veritabanı işlemleri.
type IFormSectionRepository interface {
	Create(ctx context.Context, section *models.FormSection) error
	FindByID(ctx context.Context, id uint) (*models.FormSection, error)
	FindAllByFormID(ctx context.Context, formID uint) ([]models.FormSection, error)
	MaxOrder(ctx context.Context, formID uint) (int, error)
	Update(ctx context.Context, section *models.FormSection) error
	Delete(ctx context.Context, id uint) error
	DeleteByFormID(ctx context.Context, formID uint) error
}

type FormSectionRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.FormSection]
}

func NewFormSectionRepository(db *gorm.DB) IFormSectionRepository {
	return &FormSectionRepository{db: db, base: NewBaseRepository[models.FormSection](db)}
}

func NewFormSectionRepositoryTx(tx *gorm.DB) IFormSectionRepository {
	return NewFormSectionRepository(tx)
}

func (r *FormSectionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *FormSectionRepository) Create(ctx context.Context, section *models.FormSection) error {
	if section == nil || section.FormID == 0 {
		return errors.New("formu olmayan bölüm oluşturulamaz")
	}
	return r.base.Create(ctx, section)
}

func (r *FormSectionRepository) FindByID(ctx context.Context, id uint) (*models.FormSection, error) {
	section, err := r.base.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		configslog.Log.Error("FormSectionRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
	}
	return section, err
}

func (r *FormSectionRepository) FindAllByFormID(ctx context.Context, formID uint) ([]models.FormSection, error) {
	var sections []models.FormSection
	err := r.getDB(ctx).Where("form_id = ?", formID).Order("sort_order asc, id asc").Find(&sections).Error
	if err != nil {
		configslog.Log.Error("FormSectionRepository.FindAllByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
		return nil, err
	}
	return sections, nil
}

// MaxOrder formdaki en büyük bölüm sırası; bölüm yoksa 0.
func (r *FormSectionRepository) MaxOrder(ctx context.Context, formID uint) (int, error) {
	var maxOrder int
	err := r.getDB(ctx).Model(&models.FormSection{}).
		Where("form_id = ?", formID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		configslog.Log.Error("FormSectionRepository.MaxOrder: DB error", zap.Uint("form_id", formID), zap.Error(err))
	}
	return maxOrder, err
}

func (r *FormSectionRepository) Update(ctx context.Context, section *models.FormSection) error {
	if section == nil || section.ID == 0 {
		return errors.New("güncellenecek bölüm geçerli değil")
	}
	return r.base.Save(ctx, section)
}

func (r *FormSectionRepository) Delete(ctx context.Context, id uint) error {
	affected, err := r.base.DeleteByID(ctx, id)
	if err != nil {
		configslog.Log.Error("FormSectionRepository.Delete: DB error", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FormSectionRepository) DeleteByFormID(ctx context.Context, formID uint) error {
	err := r.getDB(ctx).Where("form_id = ?", formID).Delete(&models.FormSection{}).Error
	if err != nil {
		configslog.Log.Error("FormSectionRepository.DeleteByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
	}
	return err
}
