package models

import "time"

// BaseModel tüm tabloların ortak kimlik ve zaman alanları.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
