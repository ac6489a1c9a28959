package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/dto"
	"formbuilder.link/models"
	"formbuilder.link/pkg/queryparams"
	"formbuilder.link/pkg/slugify"
	"formbuilder.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound         FormServiceError = "form bulunamadı"
	ErrFormNameRequired     FormServiceError = "form adı zorunludur"
	ErrFormInvalidStatus    FormServiceError = "geçersiz form durumu"
	ErrFormStatusTransition FormServiceError = "form durumu bu şekilde değiştirilemez"
	ErrFormSlugUnavailable  FormServiceError = "form için benzersiz bir kısa ad üretilemedi"
	ErrFormNotPublished     FormServiceError = "form yayında değil"
)

const (
	slugFallback    = "form"
	slugMaxLength   = 100
	slugMaxAttempts = 1000

	// Eşzamanlı oluşturmada slug unique index'e takılırsa tekrar denenir
	createFormMaxAttempts = 3
)

// IFormService form şeması işlemleri için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, creatorID *uint, req dto.FormCreateDTO) (*models.Form, error)
	GetFormByID(ctx context.Context, id uint) (*models.Form, error)
	ListForms(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateFormSettings(ctx context.Context, id uint, req dto.FormSettingsUpdateDTO) (*models.Form, error)
	DeleteForm(ctx context.Context, id uint) error
	GetSubmittableForm(ctx context.Context, slug string) (*models.Form, error)
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo repositories.IFormRepository
	db   *gorm.DB
}

var _ IFormService = (*FormService)(nil)

// NewFormService yeni bir FormService örneği oluşturur.
func NewFormService(db *gorm.DB) IFormService {
	return &FormService{
		repo: repositories.NewFormRepository(db),
		db:   db,
	}
}

// uniqueSlug kaynaktan slug türetir; çakışmada "-2", "-3", ... eklenir.
func uniqueSlug(ctx context.Context, repo repositories.IFormRepository, source string) (string, error) {
	base := slugify.Truncate(slugify.WithFallback(source, slugFallback), slugMaxLength-8)
	candidate := base
	for n := 2; n <= slugMaxAttempts; n++ {
		exists, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", wrapKind(ErrValidation, ErrFormSlugUnavailable)
}

// CreateForm taslak durumunda yeni bir form oluşturur. Slug bir kez türetilir.
func (s *FormService) CreateForm(ctx context.Context, creatorID *uint, req dto.FormCreateDTO) (*models.Form, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, wrapKind(ErrValidation, ErrFormNameRequired)
	}
	successMessage := strings.TrimSpace(req.SuccessMessage)
	if successMessage == "" {
		successMessage = models.DefaultSuccessMessage
	}
	slugSource := name
	if strings.TrimSpace(req.Slug) != "" {
		slugSource = req.Slug
	}

	var (
		createdForm *models.Form
		txErr       error
	)
	for attempt := 1; attempt <= createFormMaxAttempts; attempt++ {
		createdForm, txErr = s.createForm(ctx, creatorID, name, slugSource, req.Description, req.IsMultiSection, successMessage)
		if !errors.Is(txErr, gorm.ErrDuplicatedKey) {
			break
		}
		configslog.Log.Warn("CreateForm: slug çakışması, yeniden deneniyor",
			zap.String("name", name),
			zap.Int("attempt", attempt),
		)
	}
	if errors.Is(txErr, gorm.ErrDuplicatedKey) {
		txErr = wrapKind(ErrValidation, ErrFormSlugUnavailable)
	}

	if txErr != nil {
		configslog.Log.Error("CreateForm transaction failed", zap.String("name", name), zap.Error(txErr))
		return nil, txErr
	}
	configslog.SLog.Infof("Form oluşturuldu: ID %d, Ad: %s, Slug: %s", createdForm.ID, createdForm.Name, createdForm.Slug)
	return createdForm, nil
}

// createForm slug üretimi ve kaydı tek bir transaction içinde yapar.
func (s *FormService) createForm(ctx context.Context, creatorID *uint, name, slugSource, description string, multiSection bool, successMessage string) (*models.Form, error) {
	var createdForm *models.Form
	err := s.db.Transaction(func(tx *gorm.DB) error {
		formRepoTx := repositories.NewFormRepositoryTx(tx)

		slug, err := uniqueSlug(ctx, formRepoTx, slugSource)
		if err != nil {
			return err
		}

		form := models.Form{
			Name:           name,
			Description:    description,
			Slug:           slug,
			Status:         models.FormStatusDraft,
			IsMultiSection: multiSection,
			SuccessMessage: successMessage,
			CreatedByID:    creatorID,
		}
		if err := formRepoTx.Create(ctx, &form); err != nil {
			return err
		}
		createdForm = &form
		return nil
	})
	return createdForm, err
}

// GetFormByID formu bölümleri, alanları ve alan tipleriyle getirir.
func (s *FormService) GetFormByID(ctx context.Context, id uint) (*models.Form, error) {
	form, err := s.repo.FindSchemaByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrFormNotFound)
		}
		return nil, err
	}
	return form, nil
}

// ListForms formları ad/durum filtresiyle sayfalar.
func (s *FormService) ListForms(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.Status != "" && !models.FormStatus(params.Status).IsValid() {
		return nil, wrapKind(ErrValidation, ErrFormInvalidStatus)
	}

	forms, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(forms, totalCount, params), nil
}

// UpdateFormSettings verilen alanları günceller; slug asla değişmez.
func (s *FormService) UpdateFormSettings(ctx context.Context, id uint, req dto.FormSettingsUpdateDTO) (*models.Form, error) {
	var updatedForm *models.Form
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		formRepoTx := repositories.NewFormRepositoryTx(tx)

		form, err := formRepoTx.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return wrapKind(ErrNotFound, ErrFormNotFound)
			}
			return err
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return wrapKind(ErrValidation, ErrFormNameRequired)
			}
			form.Name = name
		}
		if req.Description != nil {
			form.Description = *req.Description
		}
		if req.Status != nil {
			next := *req.Status
			if !next.IsValid() {
				return wrapKind(ErrValidation, ErrFormInvalidStatus)
			}
			if !form.Status.CanTransitionTo(next) {
				return fmt.Errorf("%w: %s -> %s", wrapKind(ErrValidation, ErrFormStatusTransition), form.Status, next)
			}
			form.Status = next
		}
		if req.IsMultiSection != nil {
			form.IsMultiSection = *req.IsMultiSection
		}
		if req.SuccessMessage != nil {
			form.SuccessMessage = strings.TrimSpace(*req.SuccessMessage)
			if form.SuccessMessage == "" {
				form.SuccessMessage = models.DefaultSuccessMessage
			}
		}

		if err := formRepoTx.Update(ctx, form); err != nil {
			return err
		}
		updatedForm = form
		return nil
	})

	if txErr != nil {
		if !errors.Is(txErr, ErrNotFound) && !errors.Is(txErr, ErrValidation) {
			configslog.Log.Error("UpdateFormSettings transaction failed", zap.Uint("id", id), zap.Error(txErr))
		}
		return nil, txErr
	}
	configslog.SLog.Infof("Form güncellendi: ID %d, Durum: %s", updatedForm.ID, updatedForm.Status)
	return updatedForm, nil
}

// DeleteForm formu ve bağlı tüm kayıtlarını tek transaction içinde siler:
// cevaplar, gönderimler, alanlar, bölümler ve form.
func (s *FormService) DeleteForm(ctx context.Context, id uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		formRepoTx := repositories.NewFormRepositoryTx(tx)

		if _, err := formRepoTx.FindByIDForUpdate(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return wrapKind(ErrNotFound, ErrFormNotFound)
			}
			return err
		}
		if err := repositories.NewSubmissionRepositoryTx(tx).DeleteByFormID(ctx, id); err != nil {
			return err
		}
		if err := repositories.NewFormFieldRepositoryTx(tx).DeleteByFormID(ctx, id); err != nil {
			return err
		}
		if err := repositories.NewFormSectionRepositoryTx(tx).DeleteByFormID(ctx, id); err != nil {
			return err
		}
		return formRepoTx.Delete(ctx, id)
	})

	if txErr != nil {
		if !errors.Is(txErr, ErrNotFound) {
			configslog.Log.Error("DeleteForm transaction failed", zap.Uint("id", id), zap.Error(txErr))
		}
		return txErr
	}
	configslog.SLog.Infof("Form silindi: ID %d", id)
	return nil
}

// GetSubmittableForm yayındaki formu şemasıyla getirir. Yayında olmayan
// formlar bulunamadı olarak raporlanır.
func (s *FormService) GetSubmittableForm(ctx context.Context, slug string) (*models.Form, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, wrapKind(ErrNotFound, ErrFormNotFound)
	}

	form, err := s.repo.FindSchemaBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrFormNotFound)
		}
		return nil, err
	}
	if !form.IsSubmittable() {
		return nil, wrapKind(ErrNotFound, ErrFormNotPublished)
	}
	return form, nil
}
