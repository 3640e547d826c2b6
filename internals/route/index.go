package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/cache"
	"maktabah_backend/internals/configs"
	homeRoute "maktabah_backend/internals/features/home/route"
	lectureRoute "maktabah_backend/internals/features/lectures/route"
	scheduleRoute "maktabah_backend/internals/features/schedules/route"
	sectionRoute "maktabah_backend/internals/features/sections/route"
	seriesRoute "maktabah_backend/internals/features/series/route"
	settingsRoute "maktabah_backend/internals/features/settings/route"
	sheikhRoute "maktabah_backend/internals/features/sheikhs/route"
	authRoute "maktabah_backend/internals/features/users/auth/route"
	"maktabah_backend/internals/helpers/oss"
	authMiddleware "maktabah_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public surface, the auth endpoints, and the
// JWT-guarded admin group under /api/a.
func SetupRoutes(app *fiber.App, db *gorm.DB, c *cache.Service) {
	storage, err := oss.NewOSSServiceFromEnv("maktabah")
	if err != nil {
		// uploads and signed downloads degrade; everything else still works
		log.Printf("[WARN] object storage disabled: %v", err)
		storage = nil
	}

	log.Println("[INFO] Mounting public routes...")
	homeRoute.HomeRoutes(app, db, c)
	seriesRoute.SeriesUserRoutes(app, db)
	sheikhRoute.SheikhUserRoutes(app, db)
	lectureRoute.LectureUserRoutes(app, db, storage)
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authRoute.AuthAdminRoutes(admin, db)
	lectureRoute.LectureAdminRoutes(admin, db, storage)
	seriesRoute.SeriesAdminRoutes(admin, db, storage)
	sheikhRoute.SheikhAdminRoutes(admin, db, storage)
	sectionRoute.SectionAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db, c)
}
