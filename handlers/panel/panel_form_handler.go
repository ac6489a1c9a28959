package panel

import (
	"formbuilder.link/dto"
	"formbuilder.link/handlers"
	"formbuilder.link/pkg/queryparams"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelFormHandler form şemalarının yönetimi için JSON handler.
type PanelFormHandler struct {
	service           services.IFormService
	submissionService services.ISubmissionService
}

func NewPanelFormHandler(service services.IFormService, submissionService services.ISubmissionService) *PanelFormHandler {
	return &PanelFormHandler{service: service, submissionService: submissionService}
}

// ListForms GET /api/forms?page=&per_page=&name=&status=
func (h *PanelFormHandler) ListForms(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sorgu parametreleri")
	}

	result, err := h.service.ListForms(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// CreateForm POST /api/forms
func (h *PanelFormHandler) CreateForm(c *fiber.Ctx) error {
	var req dto.FormCreateDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	form, err := h.service.CreateForm(c.UserContext(), handlers.ActorID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// GetForm GET /api/forms/:id. Bölümler ve alanlarla birlikte.
func (h *PanelFormHandler) GetForm(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}

	form, err := h.service.GetFormByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

// UpdateForm PATCH /api/forms/:id
func (h *PanelFormHandler) UpdateForm(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.FormSettingsUpdateDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	form, err := h.service.UpdateFormSettings(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

// DeleteForm DELETE /api/forms/:id
func (h *PanelFormHandler) DeleteForm(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteForm(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSubmissions GET /api/forms/:id/submissions
func (h *PanelFormHandler) ListSubmissions(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	params := queryparams.DefaultListParams("submitted_at")
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sorgu parametreleri")
	}

	result, err := h.submissionService.ListSubmissions(c.UserContext(), id, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
