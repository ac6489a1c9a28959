package panel

import (
	"formbuilder.link/dto"
	"formbuilder.link/handlers"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelFieldHandler form alanları için JSON handler.
type PanelFieldHandler struct {
	editor services.ISchemaEditorService
}

func NewPanelFieldHandler(editor services.ISchemaEditorService) *PanelFieldHandler {
	return &PanelFieldHandler{editor: editor}
}

// CreateField POST /api/forms/:id/fields
func (h *PanelFieldHandler) CreateField(c *fiber.Ctx) error {
	formID, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.FieldCreateDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	field, err := h.editor.AddField(c.UserContext(), formID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(field)
}

// GetField GET /api/fields/:id. Alan tipi ve has_options dahil.
func (h *PanelFieldHandler) GetField(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	field, err := h.editor.GetField(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"field":       field,
		"has_options": field.FieldType.HasOptions,
	})
}

// UpdateField PATCH /api/fields/:id
func (h *PanelFieldHandler) UpdateField(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.FieldUpdateDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	field, err := h.editor.UpdateField(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(field)
}

// DeleteField DELETE /api/fields/:id
func (h *PanelFieldHandler) DeleteField(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.editor.DeleteField(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderFields POST /api/forms/:id/fields/reorder
func (h *PanelFieldHandler) ReorderFields(c *fiber.Ctx) error {
	formID, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.FieldReorderDTO
	if err := handlers.ParseJSONBody(c, &req); err != nil {
		return err
	}

	fields, err := h.editor.ReorderFields(c.UserContext(), formID, req.Fields)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"fields": fields})
}
