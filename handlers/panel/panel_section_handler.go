package panel

import (
	"formbuilder.link/dto"
	"formbuilder.link/handlers"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelSectionHandler form bölümleri için JSON handler.
type PanelSectionHandler struct {
	editor services.ISchemaEditorService
}

func NewPanelSectionHandler(editor services.ISchemaEditorService) *PanelSectionHandler {
	return &PanelSectionHandler{editor: editor}
}

// CreateSection POST /api/forms/:id/sections
func (h *PanelSectionHandler) CreateSection(c *fiber.Ctx) error {
	formID, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SectionCreateDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	section, err := h.editor.AddSection(c.UserContext(), formID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

// GetSection GET /api/sections/:id
func (h *PanelSectionHandler) GetSection(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	section, err := h.editor.GetSection(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(section)
}

// UpdateSection PATCH /api/sections/:id
func (h *PanelSectionHandler) UpdateSection(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SectionUpdateDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	section, err := h.editor.UpdateSection(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(section)
}

// DeleteSection DELETE /api/sections/:id
func (h *PanelSectionHandler) DeleteSection(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.editor.DeleteSection(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
