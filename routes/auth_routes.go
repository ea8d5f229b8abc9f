package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterAdmin)
	auth.Post("/login", handlers.LoginAdmin)
	auth.Get("/me", middleware.Protected(), handlers.GetCurrentAdmin)
	auth.Put("/account", middleware.Protected(), middleware.ApprovedAdminRequired(), handlers.UpdateAccount)
	auth.Put("/password", middleware.Protected(), middleware.ApprovedAdminRequired(), handlers.ChangePassword)
}
