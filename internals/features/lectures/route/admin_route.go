package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/lectures/controller"
	"maktabah_backend/internals/helpers/oss"
)

func LectureAdminRoutes(admin fiber.Router, db *gorm.DB, storage *oss.OSSService) {
	ctrl := controller.NewLectureAdminController(db, storage)

	lectures := admin.Group("/lectures")
	lectures.Get("/", ctrl.List)
	lectures.Post("/", ctrl.Create)
	lectures.Post("/reorder", ctrl.Reorder)
	lectures.Get("/:id", ctrl.GetByID)
	lectures.Put("/:id", ctrl.Update)
	lectures.Delete("/:id", ctrl.Delete)
	lectures.Post("/:id/audio", ctrl.UploadAudio)
}
