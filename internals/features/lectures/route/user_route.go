package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/lectures/controller"
	"maktabah_backend/internals/helpers/oss"
)

func LectureUserRoutes(app *fiber.App, db *gorm.DB, storage *oss.OSSService) {
	ctrl := controller.NewLectureUserController(db, storage)

	api := app.Group("/api/lectures")
	api.Get("/:slug", ctrl.GetBySlug)
	api.Post("/:slug/verify-duration", ctrl.VerifyDuration)

	app.Get("/stream/:slug", ctrl.Stream)
	app.Get("/download/:slug", ctrl.Download)
}
