package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/sheikhs/controller"
)

func SheikhUserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewSheikhUserController(db)

	api := app.Group("/api/sheikhs")
	api.Get("/", ctrl.List)
	api.Get("/:slug", ctrl.GetBySlug)
}
