package dto

import (
	"bytes"
	"encoding/json"
)

type FieldCreateDTO struct {
	FieldTypeID      uint                   `json:"field_type_id"`
	Label            string                 `json:"label"`
	HelpText         string                 `json:"help_text"`
	Placeholder      string                 `json:"placeholder"`
	IsRequired       bool                   `json:"is_required"`
	SectionID        *uint                  `json:"section_id"`
	Options          string                 `json:"options"`
	ConditionalLogic map[string]interface{} `json:"conditional_logic"`
}

// Etiket verilmezse korunur. Yardım metni, placeholder, zorunluluk ve
// koşul mantığı verilmezse sıfırlanır. Seçenekler sadece boş olmayan
// metinle yeniden yazılır.
type FieldUpdateDTO struct {
	Label            *string                `json:"label"`
	HelpText         string                 `json:"help_text"`
	Placeholder      string                 `json:"placeholder"`
	IsRequired       bool                   `json:"is_required"`
	SectionID        OptionalID             `json:"section_id"`
	Options          string                 `json:"options"`
	ConditionalLogic map[string]interface{} `json:"conditional_logic"`
}

// OptionalID gövdede hiç yer almayan bir kimlik ile null/0 gönderilmiş
// kimliği ayırt eder.
type OptionalID struct {
	Present bool
	ID      *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Present = true
	o.ID = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	if id != 0 {
		o.ID = &id
	}
	return nil
}

// Clears section bağının kaldırılmasının istendiğini bildirir.
func (o OptionalID) Clears() bool {
	return o.Present && o.ID == nil
}

// SetOptionalID testler ve iç çağrılar için yardımcı.
func SetOptionalID(id uint) OptionalID {
	if id == 0 {
		return OptionalID{Present: true}
	}
	return OptionalID{Present: true, ID: &id}
}

type FieldOrderItemDTO struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

type FieldReorderDTO struct {
	Fields []FieldOrderItemDTO `json:"fields"`
}
