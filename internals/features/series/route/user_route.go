package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/series/controller"
)

func SeriesUserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewSeriesUserController(db)

	api := app.Group("/api/series")
	api.Get("/", ctrl.List)
	api.Get("/:slug", ctrl.GetBySlug)
}
