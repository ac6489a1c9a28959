package panel

import (
	"formbuilder.link/handlers"
	"formbuilder.link/models"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelFieldTypeHandler alan tipi kataloğu için JSON handler.
type PanelFieldTypeHandler struct {
	service services.IFieldTypeService
}

func NewPanelFieldTypeHandler(service services.IFieldTypeService) *PanelFieldTypeHandler {
	return &PanelFieldTypeHandler{service: service}
}

// ListFieldTypes GET /api/field-types (?all=true pasif tipleri de içerir)
func (h *PanelFieldTypeHandler) ListFieldTypes(c *fiber.Ctx) error {
	var (
		fieldTypes []models.FieldType
		err        error
	)
	if c.QueryBool("all", false) {
		fieldTypes, err = h.service.ListAllFieldTypes(c.UserContext())
	} else {
		fieldTypes, err = h.service.ListActiveFieldTypes(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fieldTypes})
}

// GetFieldType GET /api/field-types/:id
func (h *PanelFieldTypeHandler) GetFieldType(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	fieldType, err := h.service.GetFieldType(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fieldType)
}

// DeleteFieldType DELETE /api/field-types/:id. Kullanımdaysa 409.
func (h *PanelFieldTypeHandler) DeleteFieldType(c *fiber.Ctx) error {
	id, err := handlers.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteFieldType(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
