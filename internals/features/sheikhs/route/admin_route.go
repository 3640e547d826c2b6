package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/sheikhs/controller"
	"maktabah_backend/internals/helpers/oss"
)

func SheikhAdminRoutes(admin fiber.Router, db *gorm.DB, storage *oss.OSSService) {
	ctrl := controller.NewSheikhAdminController(db, storage)

	sheikhs := admin.Group("/sheikhs")
	sheikhs.Get("/", ctrl.List)
	sheikhs.Post("/", ctrl.Create)
	sheikhs.Put("/:id", ctrl.Update)
	sheikhs.Delete("/:id", ctrl.Delete)
	sheikhs.Post("/:id/image", ctrl.UploadImage)
}
