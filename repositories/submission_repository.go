package repositories

import (
	"context"
	"errors"
	"sort"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"
	"formbuilder.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ISubmissionRepository form gönderimleri ve cevapları için veritabanı işlemleri.
type ISubmissionRepository interface {
	Create(ctx context.Context, submission *models.FormSubmission, values []models.FormFieldValue) error
	FindByID(ctx context.Context, id uint) (*models.FormSubmission, error)
	FindAllByFormIDPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.FormSubmission, int64, error)
	CountByFormID(ctx context.Context, formID uint) (int64, error)
	DeleteValuesByFieldID(ctx context.Context, fieldID uint) error
	DeleteByFormID(ctx context.Context, formID uint) error
}

type SubmissionRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.FormSubmission]
}

func NewSubmissionRepository(db *gorm.DB) ISubmissionRepository {
	return &SubmissionRepository{db: db, base: NewBaseRepository[models.FormSubmission](db)}
}

func NewSubmissionRepositoryTx(tx *gorm.DB) ISubmissionRepository {
	return NewSubmissionRepository(tx)
}

func (r *SubmissionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create gönderimi ve cevaplarını ekler. Atomiklik için bir transaction
// repository'si üzerinden çağrılmalıdır.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.FormSubmission, values []models.FormFieldValue) error {
	if submission == nil || submission.FormID == 0 {
		return errors.New("formu olmayan gönderim oluşturulamaz")
	}
	if err := r.base.Create(ctx, submission); err != nil {
		configslog.Log.Error("SubmissionRepository.Create: DB error", zap.Uint("form_id", submission.FormID), zap.Error(err))
		return err
	}
	if len(values) == 0 {
		submission.Values = []models.FormFieldValue{}
		return nil
	}
	for i := range values {
		values[i].SubmissionID = submission.ID
	}
	if err := r.getDB(ctx).Omit("Field").CreateInBatches(&values, 100).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.Create values: DB error", zap.Uint("submission_id", submission.ID), zap.Error(err))
		return err
	}
	submission.Values = values
	return nil
}

// FindByID gönderimi alan sırasına göre dizilmiş cevaplarıyla getirir.
func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*models.FormSubmission, error) {
	var submission models.FormSubmission
	err := r.getDB(ctx).Preload("Values.Field").First(&submission, id).Error
	if err != nil {
		err = translateError(err)
		if !errors.Is(err, ErrNotFound) {
			configslog.Log.Error("SubmissionRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		}
		return nil, err
	}
	sortValuesByFieldOrder(submission.Values)
	return &submission, nil
}

// FindAllByFormIDPaginated en yeni gönderimler önce olacak şekilde sayfalar.
func (r *SubmissionRepository) FindAllByFormIDPaginated(ctx context.Context, formID uint, params queryparams.ListParams) ([]models.FormSubmission, int64, error) {
	totalCount, err := r.CountByFormID(ctx, formID)
	if err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []models.FormSubmission{}, 0, nil
	}

	var submissions []models.FormSubmission
	err = r.getDB(ctx).Preload("Values.Field").
		Where("form_id = ?", formID).
		Order("submitted_at desc, id desc").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("SubmissionRepository.FindAllByFormIDPaginated: DB error", zap.Uint("form_id", formID), zap.Error(err))
		return nil, totalCount, err
	}
	for i := range submissions {
		sortValuesByFieldOrder(submissions[i].Values)
	}
	return submissions, totalCount, nil
}

func (r *SubmissionRepository) CountByFormID(ctx context.Context, formID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.FormSubmission{}).Where("form_id = ?", formID).Count(&count).Error
	if err != nil {
		configslog.Log.Error("SubmissionRepository.CountByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
	}
	return count, err
}

// DeleteValuesByFieldID alana ait tüm kayıtlı cevapları siler.
func (r *SubmissionRepository) DeleteValuesByFieldID(ctx context.Context, fieldID uint) error {
	err := r.getDB(ctx).Where("field_id = ?", fieldID).Delete(&models.FormFieldValue{}).Error
	if err != nil {
		configslog.Log.Error("SubmissionRepository.DeleteValuesByFieldID: DB error", zap.Uint("field_id", fieldID), zap.Error(err))
	}
	return err
}

// DeleteByFormID formun tüm gönderimlerini ve cevaplarını siler.
func (r *SubmissionRepository) DeleteByFormID(ctx context.Context, formID uint) error {
	db := r.getDB(ctx)
	submissionIDs := db.Model(&models.FormSubmission{}).Select("id").Where("form_id = ?", formID)
	if err := db.Where("submission_id IN (?)", submissionIDs).Delete(&models.FormFieldValue{}).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.DeleteByFormID values: DB error", zap.Uint("form_id", formID), zap.Error(err))
		return err
	}
	if err := db.Where("form_id = ?", formID).Delete(&models.FormSubmission{}).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.DeleteByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
		return err
	}
	return nil
}

// sortValuesByFieldOrder cevapları alanların form içindeki sırasına dizer.
func sortValuesByFieldOrder(values []models.FormFieldValue) {
	sort.SliceStable(values, func(i, j int) bool {
		fi, fj := values[i].Field, values[j].Field
		if fi == nil || fj == nil {
			return values[i].FieldID < values[j].FieldID
		}
		if fi.Order != fj.Order {
			return fi.Order < fj.Order
		}
		return fi.ID < fj.ID
	})
}
