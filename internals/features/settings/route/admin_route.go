package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/cache"
	"maktabah_backend/internals/features/settings/controller"
)

func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB, c *cache.Service) {
	ctrl := controller.NewSettingsAdminController(db, c)

	admin.Get("/settings", ctrl.Get)
	admin.Put("/settings", ctrl.Update)
	admin.Post("/settings/refresh-totals", ctrl.RefreshTotals)

	admin.Get("/cache", ctrl.CacheStats)
	admin.Delete("/cache", ctrl.CacheFlush)
}
