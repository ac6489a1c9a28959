package models

import (
	"strings"

	"gorm.io/datatypes"
)

// Choice seçenekli alanlardaki tek bir seçenek.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldOptions alanın seçenek listesi: {"choices":[{"value","label"}]}.
type FieldOptions struct {
	Choices []Choice `json:"choices,omitempty"`
}

// ParseOptionsText her satırı bir seçenek olarak okur. Boş satırlar atlanır.
func ParseOptionsText(text string) FieldOptions {
	var options FieldOptions
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		options.Choices = append(options.Choices, Choice{Value: line, Label: line})
	}
	return options
}

// FormField formdaki tek bir giriş alanı.
type FormField struct {
	BaseModel
	FormID           uint                             `gorm:"not null;index:idx_form_field_order,priority:1" json:"form_id"`
	SectionID        *uint                            `gorm:"index" json:"section_id"`
	FieldTypeID      uint                             `gorm:"not null;index" json:"field_type_id"`
	Label            string                           `gorm:"type:varchar(300);not null" json:"label"`
	HelpText         string                           `gorm:"type:text" json:"help_text"`
	Placeholder      string                           `gorm:"type:varchar(200)" json:"placeholder"`
	IsRequired       bool                             `gorm:"not null" json:"is_required"`
	Order            int                              `gorm:"column:sort_order;not null;default:0;index:idx_form_field_order,priority:2" json:"order"`
	Options          datatypes.JSONType[FieldOptions] `json:"options"`
	Validations      datatypes.JSONMap                `json:"validations"`
	ConditionalLogic datatypes.JSONMap                `json:"conditional_logic"`

	// GORM İlişkileri
	FieldType FieldType `gorm:"foreignKey:FieldTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"field_type"`
}

// ResolveValue gönderilen ham değerlerden saklanacak metni üretir:
// eksikse boş, checkbox ise virgülle birleşik, diğerlerinde son değer.
func (f *FormField) ResolveValue(raw []string) string {
	if len(raw) == 0 {
		return ""
	}
	if f.FieldType.InputType.IsMultiValued() {
		return strings.Join(raw, ",")
	}
	return raw[len(raw)-1]
}

// Choices kısayol.
func (f *FormField) Choices() []Choice {
	return f.Options.Data().Choices
}
