package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func CommunicationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	communications := api.Group("/communications", middleware.Protected(), middleware.ApprovedAdminRequired())
	communications.Get("", handlers.GetCommunications)
	communications.Post("/send", handlers.SendCommunication)
	communications.Post("/log-inbound", handlers.LogInboundCommunication)
	communications.Put("/:commId/status", handlers.UpdateCommunicationStatus)

	api.Get("/template-merge-fields", middleware.Protected(), middleware.ApprovedAdminRequired(), handlers.GetMergeFields)

	templates := api.Group("/templates", middleware.Protected(), middleware.ApprovedAdminRequired())
	templates.Get("", handlers.GetTemplates)
	templates.Post("", handlers.CreateTemplate)
	templates.Post("/seed-defaults", handlers.SeedDefaultTemplates)
	templates.Post("/preview", handlers.PreviewTemplateContent)
	templates.Get("/:templateId", handlers.GetTemplate)
	templates.Put("/:templateId", handlers.UpdateTemplate)
	templates.Delete("/:templateId", handlers.DeleteTemplate)
	templates.Get("/:templateId/preview", handlers.PreviewTemplate)
}
