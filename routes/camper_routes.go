package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func CamperRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	campers := api.Group("/campers", middleware.Protected(), middleware.ApprovedAdminRequired())
	campers.Post("", handlers.CreateCamper)
	campers.Get("", handlers.GetCampers)
	campers.Get("/kanban", handlers.GetKanbanBoard)
	campers.Get("/trash", handlers.GetTrash)
	campers.Get("/export", handlers.ExportCampersCSV)
	campers.Get("/:camperId", handlers.GetCamper)
	campers.Put("/:camperId", handlers.UpdateCamper)
	campers.Delete("/:camperId", handlers.DeleteCamper)
	campers.Put("/:camperId/status", handlers.UpdateCamperStatus)
	campers.Get("/:camperId/email-preview", handlers.GetStatusEmailPreview)
	campers.Post("/:camperId/restore", handlers.RestoreCamper)
	campers.Delete("/:camperId/permanent", handlers.PermanentDeleteCamper)
	campers.Get("/:camperId/activity", handlers.GetCamperActivity)
	campers.Post("/:camperId/notes", handlers.AddCamperNote)

	api.Get("/search", middleware.Protected(), middleware.ApprovedAdminRequired(), handlers.GlobalSearch)
}
