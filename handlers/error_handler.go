package handlers

import (
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusForError servis hata türünü HTTP durum koduna çevirir.
func StatusForError(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotSubmittable), errors.Is(err, services.ErrReferentialIntegrity):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler tüm handler hatalarını {"error": "..."} JSON gövdesiyle döner.
// 5xx hatalarının ayrıntısı istemciye gösterilmez, loglanır.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusForError(err)
	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenirken beklenmeyen hata",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		message = "Sunucu hatası, lütfen daha sonra tekrar deneyin."
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// NotFoundHandler eşleşmeyen rotalar için.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
}
