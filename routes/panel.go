package routes

import (
	"formbuilder.link/configs"
	panel_handlers "formbuilder.link/handlers/panel"
	"formbuilder.link/middlewares"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerPanelRoutes /api altındaki yönetim rotalarını tanımlar.
func registerPanelRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	formService := services.NewFormService(db)
	editorService := services.NewSchemaEditorService(db)

	fieldTypeHandler := panel_handlers.NewPanelFieldTypeHandler(services.NewFieldTypeService(db))
	formHandler := panel_handlers.NewPanelFormHandler(formService, services.NewSubmissionService(db))
	sectionHandler := panel_handlers.NewPanelSectionHandler(editorService)
	fieldHandler := panel_handlers.NewPanelFieldHandler(editorService)

	api := app.Group("/api")
	api.Use(
		middlewares.AdminAuth(cfg.AdminKeyHash), // 1. Yönetici anahtarı
		middlewares.ActorMiddleware,            // 2. X-User-ID
	)

	// --- Alan Tipleri ---
	api.Get("/field-types", fieldTypeHandler.ListFieldTypes)
	api.Get("/field-types/:id", fieldTypeHandler.GetFieldType)
	api.Delete("/field-types/:id", fieldTypeHandler.DeleteFieldType)

	// --- Formlar ---
	api.Get("/forms", formHandler.ListForms)
	api.Post("/forms", formHandler.CreateForm)
	api.Get("/forms/:id", formHandler.GetForm)
	api.Patch("/forms/:id", formHandler.UpdateForm)
	api.Delete("/forms/:id", formHandler.DeleteForm)
	api.Get("/forms/:id/submissions", formHandler.ListSubmissions)

	// --- Bölümler ---
	api.Post("/forms/:id/sections", sectionHandler.CreateSection)
	api.Get("/sections/:id", sectionHandler.GetSection)
	api.Patch("/sections/:id", sectionHandler.UpdateSection)
	api.Delete("/sections/:id", sectionHandler.DeleteSection)

	// --- Alanlar ---
	api.Post("/forms/:id/fields", fieldHandler.CreateField)
	api.Post("/forms/:id/fields/reorder", fieldHandler.ReorderFields)
	api.Get("/fields/:id", fieldHandler.GetField)
	api.Patch("/fields/:id", fieldHandler.UpdateField)
	api.Delete("/fields/:id", fieldHandler.DeleteField)
}
