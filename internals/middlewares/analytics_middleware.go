package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analytics "maktabah_backend/internals/features/analytics/service"
)

// AnalyticsMiddleware records page views fire-and-forget: the increment
// runs on a detached goroutine, never blocks the response, and its
// failures are logged inside the recorder.
func AnalyticsMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if analytics.ShouldTrack(c.Method(), c.Path(), c.Get(fiber.HeaderUserAgent)) {
			path := c.Path() // copy before the ctx is recycled
			go analytics.Record(db, path)
		}
		return c.Next()
	}
}
