package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/schedules/controller"
)

func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleAdminController(db)

	schedules := admin.Group("/schedules")
	schedules.Get("/", ctrl.List)
	schedules.Post("/", ctrl.Create)
	schedules.Put("/:id", ctrl.Update)
	schedules.Delete("/:id", ctrl.Delete)
}
