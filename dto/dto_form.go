package dto

import "formbuilder.link/models"

// Yeni form oluşturma
type FormCreateDTO struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Slug           string `json:"slug"`
	IsMultiSection bool   `json:"is_multi_section"`
	SuccessMessage string `json:"success_message"`
}

// Form ayarlarını kısmi güncelleme; nil alanlar değişmez
type FormSettingsUpdateDTO struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Status         *models.FormStatus `json:"status"`
	IsMultiSection *bool              `json:"is_multi_section"`
	SuccessMessage *string            `json:"success_message"`
}
