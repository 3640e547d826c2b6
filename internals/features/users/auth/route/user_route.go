package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/users/auth/controller"
	"maktabah_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/logout", ctrl.Logout)
}

func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	admin.Get("/me", ctrl.Me)
}
