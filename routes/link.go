package routes

import (
	link_handlers "formbuilder.link/handlers/link"
	"formbuilder.link/middlewares"
	"formbuilder.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerPublicFormRoutes yayınlanmış formların public rotalarını tanımlar.
func registerPublicFormRoutes(app *fiber.App, db *gorm.DB) {
	formHandler := link_handlers.NewPublicFormHandler(services.NewFormService(db))
	submitHandler := link_handlers.NewSubmitHandler(services.NewSubmissionService(db))

	public := app.Group("/f")
	public.Use(middlewares.ActorMiddleware)
	public.Get("/:slug", formHandler.ShowForm)
	public.Post("/:slug/submit", submitHandler.Submit)
}
