package models

import "time"

// FormSubmission yayındaki bir forma yapılan tek bir gönderim.
type FormSubmission struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FormID        uint      `gorm:"not null;index" json:"form_id"`
	SubmittedByID *uint     `gorm:"index" json:"submitted_by_id"`
	SubmittedAt   time.Time `gorm:"not null;index" json:"submitted_at"`
	IPAddress     *string   `gorm:"type:varchar(45)" json:"ip_address"`

	Values []FormFieldValue `gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"values,omitempty"`
}

// FormFieldValue bir gönderimde tek bir alana verilen cevap.
type FormFieldValue struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SubmissionID uint   `gorm:"not null;index" json:"submission_id"`
	FieldID      uint   `gorm:"not null;index" json:"field_id"`
	Value        string `gorm:"type:text;not null" json:"value"`

	Field *FormField `gorm:"foreignKey:FieldID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"field,omitempty"`
}
