package routes

import (
	"formbuilder.link/configs"
	"formbuilder.link/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// NewApp hata işleyicisi ve gövde limiti ayarlanmış fiber uygulaması oluşturur.
func NewApp(cfg *configs.AppConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "formbuilder",
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    cfg.BodyLimit,
	})
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.AppConfig) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New())
	app.Use(requestid.New())
	if !cfg.IsProduction() {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-API-Key, X-User-ID",
	}))

	app.Get("/healthz", handlers.NewHealthHandler(db).Check)

	// --- Rota Grupları ---
	registerPanelRoutes(app, db, cfg)
	registerPublicFormRoutes(app, db)

	// --- 404 Handler ---
	app.Use(handlers.NotFoundHandler)
}
