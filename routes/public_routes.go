package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

// PublicRoutes covers everything reachable without an admin session: the
// application form, the parent portal and the live activity socket upgrade.
func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/apply", handlers.SubmitApplication)

	portal := api.Group("/portal")
	portal.Get("/:token", handlers.GetPortal)
	portal.Post("/:token/payment", handlers.CreatePortalPayment)

	app.Use("/ws", handlers.WebSocketUpgrade)
	app.Get("/ws/activity", middleware.ProtectedWebsocket(), handlers.ActivityFeedSocket)
}
