package dto

type SectionCreateDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Başlık verilmezse korunur, açıklama verilmezse temizlenir
type SectionUpdateDTO struct {
	Title       *string `json:"title"`
	Description string  `json:"description"`
}
