package models

// FormStatus formun yaşam döngüsü durumu.
type FormStatus string

const (
	FormStatusDraft     FormStatus = "draft"
	FormStatusPublished FormStatus = "published"
	FormStatusArchived  FormStatus = "archived"
)

// DefaultSuccessMessage gönderim sonrası gösterilen varsayılan mesaj.
const DefaultSuccessMessage = "Thank you for your submission!"

func (s FormStatus) IsValid() bool {
	switch s {
	case FormStatusDraft, FormStatusPublished, FormStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo izin verilen durum geçişleri:
// draft -> published, draft -> archived, published -> archived.
// Aynı duruma geçiş her zaman serbesttir.
func (s FormStatus) CanTransitionTo(next FormStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	switch s {
	case FormStatusDraft:
		return next == FormStatusPublished || next == FormStatusArchived
	case FormStatusPublished:
		return next == FormStatusArchived
	}
	return false
}

// Form bir form şemasının ana kaydıdır.
type Form struct {
	BaseModel
	Name           string     `gorm:"type:varchar(200);not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	Slug           string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Status         FormStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	IsMultiSection bool       `gorm:"not null" json:"is_multi_section"`
	SuccessMessage string     `gorm:"type:text" json:"success_message"`
	CreatedByID    *uint      `gorm:"index" json:"created_by_id"`

	// GORM İlişkileri
	Sections    []FormSection    `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sections,omitempty"`
	Fields      []FormField      `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"fields,omitempty"`
	Submissions []FormSubmission `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// IsSubmittable sadece yayındaki formlar gönderim kabul eder.
func (f *Form) IsSubmittable() bool {
	return f.Status == FormStatusPublished
}

// UnsectionedFields bir bölüme bağlı olmayan alanlar (sıralı).
func (f *Form) UnsectionedFields() []FormField {
	fields := make([]FormField, 0)
	for _, field := range f.Fields {
		if field.SectionID == nil {
			fields = append(fields, field)
		}
	}
	return fields
}

// FormSection bir formun isteğe bağlı gruplama birimi.
type FormSection struct {
	BaseModel
	FormID      uint   `gorm:"not null;index:idx_form_section_order,priority:1" json:"form_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"column:sort_order;not null;default:0;index:idx_form_section_order,priority:2" json:"order"`

	Fields []FormField `gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"fields,omitempty"`
}
