package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/series/controller"
	"maktabah_backend/internals/helpers/oss"
)

func SeriesAdminRoutes(admin fiber.Router, db *gorm.DB, storage *oss.OSSService) {
	ctrl := controller.NewSeriesAdminController(db, storage)

	series := admin.Group("/series")
	series.Get("/", ctrl.List)
	series.Post("/", ctrl.Create)
	series.Get("/:id", ctrl.GetByID)
	series.Put("/:id", ctrl.Update)
	series.Delete("/:id", ctrl.Delete)
	series.Post("/:id/image", ctrl.UploadImage)
}
