package route

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"maktabah_backend/internals/features/sections/controller"
)

func SectionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSectionAdminController(db)

	sections := admin.Group("/sections")
	sections.Get("/", ctrl.List)
	sections.Post("/", ctrl.Create)
	sections.Put("/:id", ctrl.Update)
	sections.Delete("/:id", ctrl.Delete)
}
