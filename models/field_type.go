package models

import "gorm.io/datatypes"

// InputKind bir alan tipinin kullanıcıya nasıl sunulduğunu belirler.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTextarea InputKind = "textarea"
	InputEmail    InputKind = "email"
	InputTel      InputKind = "tel"
	InputNumber   InputKind = "number"
	InputDate     InputKind = "date"
	InputSelect   InputKind = "select"
	InputRadio    InputKind = "radio"
	InputCheckbox InputKind = "checkbox"
	InputYesNo    InputKind = "yes_no"
	InputFile     InputKind = "file"
)

var inputKinds = map[InputKind]struct{}{
	InputText: {}, InputTextarea: {}, InputEmail: {}, InputTel: {},
	InputNumber: {}, InputDate: {}, InputSelect: {}, InputRadio: {},
	InputCheckbox: {}, InputYesNo: {}, InputFile: {},
}

func (k InputKind) IsValid() bool {
	_, ok := inputKinds[k]
	return ok
}

// IsMultiValued birden fazla değer gönderilebilen tipler (checkbox).
func (k InputKind) IsMultiValued() bool {
	return k == InputCheckbox
}

// FieldType form alanlarının şablonu olan katalog kaydı.
type FieldType struct {
	BaseModel
	Name               string            `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	InputType          InputKind         `gorm:"type:varchar(50);not null" json:"input_type"`
	HasOptions         bool              `gorm:"not null" json:"has_options"`
	DefaultValidations datatypes.JSONMap `json:"default_validations"`
	Icon               string            `gorm:"type:varchar(50)" json:"icon"`
	IsActive           bool              `gorm:"not null;index" json:"is_active"`
}
