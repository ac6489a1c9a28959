package dto

import (
	"strconv"

	"formbuilder.link/models"
)

// Public form görünümü; render katmanının ihtiyaç duyduğu her şeyi içerir
type PublicFormDTO struct {
	ID             uint               `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Slug           string             `json:"slug"`
	IsMultiSection bool               `json:"is_multi_section"`
	Sections       []PublicSectionDTO `json:"sections"`
	Fields         []PublicFieldDTO   `json:"fields"`
}

type PublicSectionDTO struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Order       int              `json:"order"`
	Fields      []PublicFieldDTO `json:"fields"`
}

type PublicFieldDTO struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Label            string                 `json:"label"`
	HelpText         string                 `json:"help_text"`
	Placeholder      string                 `json:"placeholder"`
	IsRequired       bool                   `json:"is_required"`
	Order            int                    `json:"order"`
	InputType        models.InputKind       `json:"input_type"`
	HasOptions       bool                   `json:"has_options"`
	Choices          []models.Choice        `json:"choices"`
	Validations      map[string]interface{} `json:"validations"`
	ConditionalLogic map[string]interface{} `json:"conditional_logic"`
}

// NewPublicFormDTO şeması yüklenmiş formdan public görünüm üretir.
// Fields sadece bölümsüz alanları içerir.
func NewPublicFormDTO(form *models.Form) PublicFormDTO {
	view := PublicFormDTO{
		ID:             form.ID,
		Name:           form.Name,
		Description:    form.Description,
		Slug:           form.Slug,
		IsMultiSection: form.IsMultiSection,
		Sections:       make([]PublicSectionDTO, 0, len(form.Sections)),
		Fields:         make([]PublicFieldDTO, 0),
	}
	for _, section := range form.Sections {
		sectionView := PublicSectionDTO{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Order:       section.Order,
			Fields:      make([]PublicFieldDTO, 0, len(section.Fields)),
		}
		for i := range section.Fields {
			sectionView.Fields = append(sectionView.Fields, newPublicFieldDTO(&section.Fields[i]))
		}
		view.Sections = append(view.Sections, sectionView)
	}
	unsectioned := form.UnsectionedFields()
	for i := range unsectioned {
		view.Fields = append(view.Fields, newPublicFieldDTO(&unsectioned[i]))
	}
	return view
}

func newPublicFieldDTO(field *models.FormField) PublicFieldDTO {
	choices := field.Choices()
	if choices == nil {
		choices = []models.Choice{}
	}
	return PublicFieldDTO{
		ID:               field.ID,
		Name:             FieldKeyPrefix + strconv.FormatUint(uint64(field.ID), 10),
		Label:            field.Label,
		HelpText:         field.HelpText,
		Placeholder:      field.Placeholder,
		IsRequired:       field.IsRequired,
		Order:            field.Order,
		InputType:        field.FieldType.InputType,
		HasOptions:       field.FieldType.HasOptions,
		Choices:          choices,
		Validations:      field.Validations,
		ConditionalLogic: field.ConditionalLogic,
	}
}
