package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/cache"
	"maktabah_backend/internals/features/home/controller"
)

func HomeRoutes(app *fiber.App, db *gorm.DB, c *cache.Service) {
	ctrl := controller.NewHomeController(db, c)

	api := app.Group("/api/homepage")
	api.Get("/", ctrl.GetHomepage)
	api.Get("/series", ctrl.GetSeriesTab)
	api.Get("/standalone", ctrl.GetStandaloneTab)
	api.Get("/khutbas", ctrl.GetKhutbasTab)
	api.Get("/stats", ctrl.GetStats)

	app.Get("/api/schedule", ctrl.GetSchedule)
	app.Get("/sitemap.xml", ctrl.GetSitemap)
	app.Get("/robots.txt", ctrl.GetRobots)
}
