package routes

import (
	"github.com/campbaraisa/camp_admin/handlers"
	"github.com/campbaraisa/camp_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func GroupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	groups := api.Group("/groups", middleware.Protected(), middleware.ApprovedAdminRequired())
	groups.Get("", handlers.GetGroups)
	groups.Post("", handlers.CreateGroup)
	groups.Get("/:groupId", handlers.GetGroup)
	groups.Put("/:groupId", handlers.UpdateGroup)
	groups.Delete("/:groupId", handlers.DeleteGroup)
	groups.Post("/:groupId/members", handlers.AddGroupMember)
	groups.Delete("/:groupId/members/:camperId", handlers.RemoveGroupMember)

	rooms := api.Group("/rooms", middleware.Protected(), middleware.ApprovedAdminRequired())
	rooms.Get("", handlers.GetRooms)
	rooms.Post("", handlers.CreateRoom)
	rooms.Get("/:roomId", handlers.GetRoom)
	rooms.Put("/:roomId", handlers.UpdateRoom)
	rooms.Delete("/:roomId", handlers.DeleteRoom)
	rooms.Post("/:roomId/assign", handlers.AssignCamperToRoom)

	api.Delete("/campers/:camperId/room", middleware.Protected(), middleware.ApprovedAdminRequired(), handlers.UnassignCamperFromRoom)
}
