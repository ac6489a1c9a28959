package link

import (
	"formbuilder.link/dto"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
)

// PublicFormHandler yayınlanmış formların herkese açık görünümü.
type PublicFormHandler struct {
	formService services.IFormService
}

func NewPublicFormHandler(formService services.IFormService) *PublicFormHandler {
	return &PublicFormHandler{formService: formService}
}

// ShowForm GET /f/:slug. Yayında olmayan formlar 404 döner.
func (h *PublicFormHandler) ShowForm(c *fiber.Ctx) error {
	form, err := h.formService.GetSubmittableForm(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPublicFormDTO(form))
}
