package services

import (
	"errors"
	"fmt"
)

// Hata türleri. Servis hataları bunlardan birini sarar ve
// çağıranlar errors.Is ile eşleştirir.
var (
	ErrNotFound             = errors.New("kaynak bulunamadı")
	ErrValidation           = errors.New("geçersiz girdi")
	ErrNotSubmittable       = errors.New("form gönderime açık değil")
	ErrReferentialIntegrity = errors.New("kayıt başka kayıtlar tarafından kullanılıyor")
)

// wrapKind hatayı hem tür sentinel'ı hem de servis hatasıyla eşleşebilir yapar.
func wrapKind(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
