package services

import (
	"context"
	"errors"
	"strings"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/dto"
	"formbuilder.link/models"
	"formbuilder.link/repositories"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchemaEditorError bölüm ve alan düzenleme hataları
type SchemaEditorError string

func (e SchemaEditorError) Error() string { return string(e) }

const (
	ErrSectionNotFound      SchemaEditorError = "bölüm bulunamadı"
	ErrSectionTitleRequired SchemaEditorError = "bölüm başlığı zorunludur"
	ErrSectionFormMismatch  SchemaEditorError = "bölüm bu forma ait değil"
	ErrFieldNotFound        SchemaEditorError = "alan bulunamadı"
	ErrFieldLabelRequired   SchemaEditorError = "alan etiketi zorunludur"
)

// ISchemaEditorService form bölümlerini ve alanlarını düzenler.
type ISchemaEditorService interface {
	AddSection(ctx context.Context, formID uint, req dto.SectionCreateDTO) (*models.FormSection, error)
	GetSection(ctx context.Context, id uint) (*models.FormSection, error)
	UpdateSection(ctx context.Context, id uint, req dto.SectionUpdateDTO) (*models.FormSection, error)
	DeleteSection(ctx context.Context, id uint) error

	AddField(ctx context.Context, formID uint, req dto.FieldCreateDTO) (*models.FormField, error)
	GetField(ctx context.Context, id uint) (*models.FormField, error)
	UpdateField(ctx context.Context, id uint, req dto.FieldUpdateDTO) (*models.FormField, error)
	DeleteField(ctx context.Context, id uint) error
	ReorderFields(ctx context.Context, formID uint, items []dto.FieldOrderItemDTO) ([]models.FormField, error)
}

// SchemaEditorService ISchemaEditorService arayüzünü uygular. Her değişiklik
// tek bir transaction içinde ve sahibi olan form satırı kilitliyken yapılır.
type SchemaEditorService struct {
	sectionRepo repositories.IFormSectionRepository
	fieldRepo   repositories.IFormFieldRepository
	db          *gorm.DB
}

var _ ISchemaEditorService = (*SchemaEditorService)(nil)

func NewSchemaEditorService(db *gorm.DB) ISchemaEditorService {
	return &SchemaEditorService{
		sectionRepo: repositories.NewFormSectionRepository(db),
		fieldRepo:   repositories.NewFormFieldRepository(db),
		db:          db,
	}
}

// lockForm sahibi formu FOR UPDATE ile kilitler.
func lockForm(ctx context.Context, tx *gorm.DB, formID uint) (*models.Form, error) {
	form, err := repositories.NewFormRepositoryTx(tx).FindByIDForUpdate(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrFormNotFound)
		}
		return nil, err
	}
	return form, nil
}

func findSection(ctx context.Context, repo repositories.IFormSectionRepository, id uint) (*models.FormSection, error) {
	section, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrSectionNotFound)
		}
		return nil, err
	}
	return section, nil
}

func findField(ctx context.Context, repo repositories.IFormFieldRepository, id uint) (*models.FormField, error) {
	field, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, wrapKind(ErrNotFound, ErrFieldNotFound)
		}
		return nil, err
	}
	return field, nil
}

// sectionInForm bölümün var olduğunu ve verilen forma ait olduğunu doğrular.
func sectionInForm(ctx context.Context, repo repositories.IFormSectionRepository, sectionID, formID uint) error {
	section, err := findSection(ctx, repo, sectionID)
	if err != nil {
		return err
	}
	if section.FormID != formID {
		return wrapKind(ErrValidation, ErrSectionFormMismatch)
	}
	return nil
}

func cloneJSONMap(m map[string]interface{}) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// logIfUnexpected beklenen iş kuralı hatalarını loglamaz.
func logIfUnexpected(msg string, err error, fields ...zap.Field) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotSubmittable) || errors.Is(err, ErrReferentialIntegrity) {
		return
	}
	configslog.Log.Error(msg, append(fields, zap.Error(err))...)
}

// --- Bölümler ---

// AddSection formun sonuna yeni bir bölüm ekler (sıra = max + 1).
func (s *SchemaEditorService) AddSection(ctx context.Context, formID uint, req dto.SectionCreateDTO) (*models.FormSection, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, wrapKind(ErrValidation, ErrSectionTitleRequired)
	}

	var created *models.FormSection
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		sectionRepoTx := repositories.NewFormSectionRepositoryTx(tx)

		if _, err := lockForm(ctx, tx, formID); err != nil {
			return err
		}
		maxOrder, err := sectionRepoTx.MaxOrder(ctx, formID)
		if err != nil {
			return err
		}

		section := models.FormSection{
			FormID:      formID,
			Title:       title,
			Description: req.Description,
			Order:       maxOrder + 1,
		}
		if err := sectionRepoTx.Create(ctx, &section); err != nil {
			return err
		}
		created = &section
		return nil
	})

	if txErr != nil {
		logIfUnexpected("AddSection transaction failed", txErr, zap.Uint("form_id", formID))
		return nil, txErr
	}
	configslog.SLog.Infof("Bölüm eklendi: ID %d, Form: %d, Sıra: %d", created.ID, formID, created.Order)
	return created, nil
}

func (s *SchemaEditorService) GetSection(ctx context.Context, id uint) (*models.FormSection, error) {
	return findSection(ctx, s.sectionRepo, id)
}

// UpdateSection başlık verilmezse korunur, açıklama her zaman yeniden yazılır.
func (s *SchemaEditorService) UpdateSection(ctx context.Context, id uint, req dto.SectionUpdateDTO) (*models.FormSection, error) {
	var updated *models.FormSection
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		sectionRepoTx := repositories.NewFormSectionRepositoryTx(tx)

		section, err := findSection(ctx, sectionRepoTx, id)
		if err != nil {
			return err
		}
		if _, err := lockForm(ctx, tx, section.FormID); err != nil {
			return err
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return wrapKind(ErrValidation, ErrSectionTitleRequired)
			}
			section.Title = title
		}
		section.Description = req.Description

		if err := sectionRepoTx.Update(ctx, section); err != nil {
			return err
		}
		updated = section
		return nil
	})

	if txErr != nil {
		logIfUnexpected("UpdateSection transaction failed", txErr, zap.Uint("section_id", id))
		return nil, txErr
	}
	configslog.SLog.Infof("Bölüm güncellendi: ID %d", id)
	return updated, nil
}

// DeleteSection bölümdeki alanları bölümsüz bırakır, ardından bölümü siler.
func (s *SchemaEditorService) DeleteSection(ctx context.Context, id uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		sectionRepoTx := repositories.NewFormSectionRepositoryTx(tx)

		section, err := findSection(ctx, sectionRepoTx, id)
		if err != nil {
			return err
		}
		if _, err := lockForm(ctx, tx, section.FormID); err != nil {
			return err
		}
		if err := repositories.NewFormFieldRepositoryTx(tx).ClearSection(ctx, id); err != nil {
			return err
		}
		return sectionRepoTx.Delete(ctx, id)
	})

	if txErr != nil {
		logIfUnexpected("DeleteSection transaction failed", txErr, zap.Uint("section_id", id))
		return txErr
	}
	configslog.SLog.Infof("Bölüm silindi: ID %d", id)
	return nil
}

// --- Alanlar ---

// AddField forma yeni bir alan ekler. Doğrulama kuralları alan tipinin
// varsayılan şablonundan kopyalanır, sıra = max + 1.
func (s *SchemaEditorService) AddField(ctx context.Context, formID uint, req dto.FieldCreateDTO) (*models.FormField, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, wrapKind(ErrValidation, ErrFieldLabelRequired)
	}

	var created *models.FormField
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		fieldRepoTx := repositories.NewFormFieldRepositoryTx(tx)

		if _, err := lockForm(ctx, tx, formID); err != nil {
			return err
		}

		fieldType, err := repositories.NewFieldTypeRepositoryTx(tx).FindByID(ctx, req.FieldTypeID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return wrapKind(ErrNotFound, ErrFieldTypeNotFound)
			}
			return err
		}

		var sectionID *uint
		if req.SectionID != nil && *req.SectionID != 0 {
			if err := sectionInForm(ctx, repositories.NewFormSectionRepositoryTx(tx), *req.SectionID, formID); err != nil {
				return err
			}
			id := *req.SectionID
			sectionID = &id
		}

		maxOrder, err := fieldRepoTx.MaxOrder(ctx, formID)
		if err != nil {
			return err
		}

		field := models.FormField{
			FormID:           formID,
			SectionID:        sectionID,
			FieldTypeID:      fieldType.ID,
			Label:            label,
			HelpText:         req.HelpText,
			Placeholder:      req.Placeholder,
			IsRequired:       req.IsRequired,
			Order:            maxOrder + 1,
			Options:          datatypes.NewJSONType(models.ParseOptionsText(req.Options)),
			Validations:      cloneJSONMap(fieldType.DefaultValidations),
			ConditionalLogic: cloneJSONMap(req.ConditionalLogic),
		}
		if err := fieldRepoTx.Create(ctx, &field); err != nil {
			return err
		}
		field.FieldType = *fieldType
		created = &field
		return nil
	})

	if txErr != nil {
		logIfUnexpected("AddField transaction failed", txErr, zap.Uint("form_id", formID), zap.Uint("field_type_id", req.FieldTypeID))
		return nil, txErr
	}
	configslog.SLog.Infof("Alan eklendi: ID %d, Form: %d, Sıra: %d", created.ID, formID, created.Order)
	return created, nil
}

// GetField alanı tipiyle birlikte getirir.
func (s *SchemaEditorService) GetField(ctx context.Context, id uint) (*models.FormField, error) {
	return findField(ctx, s.fieldRepo, id)
}

// UpdateField alanı günceller. Bölüm bağı sadece istekte yer alıyorsa değişir.
func (s *SchemaEditorService) UpdateField(ctx context.Context, id uint, req dto.FieldUpdateDTO) (*models.FormField, error) {
	var updated *models.FormField
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		fieldRepoTx := repositories.NewFormFieldRepositoryTx(tx)

		field, err := findField(ctx, fieldRepoTx, id)
		if err != nil {
			return err
		}
		if _, err := lockForm(ctx, tx, field.FormID); err != nil {
			return err
		}

		if req.Label != nil {
			label := strings.TrimSpace(*req.Label)
			if label == "" {
				return wrapKind(ErrValidation, ErrFieldLabelRequired)
			}
			field.Label = label
		}
		field.HelpText = req.HelpText
		field.Placeholder = req.Placeholder
		field.IsRequired = req.IsRequired
		field.ConditionalLogic = cloneJSONMap(req.ConditionalLogic)

		if req.SectionID.Present {
			if req.SectionID.Clears() {
				field.SectionID = nil
			} else {
				sectionID := *req.SectionID.ID
				if err := sectionInForm(ctx, repositories.NewFormSectionRepositoryTx(tx), sectionID, field.FormID); err != nil {
					return err
				}
				field.SectionID = &sectionID
			}
		}

		if strings.TrimSpace(req.Options) != "" {
			field.Options = datatypes.NewJSONType(models.ParseOptionsText(req.Options))
		}

		if err := fieldRepoTx.Update(ctx, field); err != nil {
			return err
		}
		updated = field
		return nil
	})

	if txErr != nil {
		logIfUnexpected("UpdateField transaction failed", txErr, zap.Uint("field_id", id))
		return nil, txErr
	}
	configslog.SLog.Infof("Alan güncellendi: ID %d", id)
	return updated, nil
}

// DeleteField alana ait kayıtlı cevapları ve alanı birlikte siler.
func (s *SchemaEditorService) DeleteField(ctx context.Context, id uint) error {
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		fieldRepoTx := repositories.NewFormFieldRepositoryTx(tx)

		field, err := findField(ctx, fieldRepoTx, id)
		if err != nil {
			return err
		}
		if _, err := lockForm(ctx, tx, field.FormID); err != nil {
			return err
		}
		if err := repositories.NewSubmissionRepositoryTx(tx).DeleteValuesByFieldID(ctx, id); err != nil {
			return err
		}
		return fieldRepoTx.Delete(ctx, id)
	})

	if txErr != nil {
		logIfUnexpected("DeleteField transaction failed", txErr, zap.Uint("field_id", id))
		return txErr
	}
	configslog.SLog.Infof("Alan silindi: ID %d", id)
	return nil
}

// ReorderFields verilen sıraları uygular. Başka forma ait ya da var olmayan
// alan kimlikleri sessizce atlanır. Güncel alan listesini sıralı döner.
func (s *SchemaEditorService) ReorderFields(ctx context.Context, formID uint, items []dto.FieldOrderItemDTO) ([]models.FormField, error) {
	var fields []models.FormField
	skipped := 0
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		fieldRepoTx := repositories.NewFormFieldRepositoryTx(tx)

		if _, err := lockForm(ctx, tx, formID); err != nil {
			return err
		}
		for _, item := range items {
			affected, err := fieldRepoTx.UpdateOrder(ctx, formID, item.ID, item.Order)
			if err != nil {
				return err
			}
			if affected == 0 {
				skipped++
			}
		}

		var err error
		fields, err = fieldRepoTx.FindAllByFormID(ctx, formID)
		return err
	})

	if txErr != nil {
		logIfUnexpected("ReorderFields transaction failed", txErr, zap.Uint("form_id", formID))
		return nil, txErr
	}
	if skipped > 0 {
		configslog.Log.Warn("ReorderFields: forma ait olmayan alanlar atlandı", zap.Uint("form_id", formID), zap.Int("skipped", skipped))
	}
	configslog.SLog.Infof("Alanlar yeniden sıralandı: Form %d, %d öğe", formID, len(items)-skipped)
	return fields, nil
}
