package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RoomRequest struct {
	Name     string  `json:"name" validate:"required"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
	Building *string `json:"building"`
}

func CreateRoom(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room := models.Room{Name: req.Name, Capacity: req.Capacity, Building: req.Building}
	if err := database.DB.Create(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create room"})
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// GetRooms lists rooms with their derived occupancy.
func GetRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.Order("name asc").Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	out := make([]fiber.Map, 0, len(rooms))
	for _, room := range rooms {
		var occupants int64
		database.DB.Model(&models.Camper{}).Where("room_id = ?", room.ID).Count(&occupants)
		out = append(out, fiber.Map{
			"id":        room.ID,
			"name":      room.Name,
			"capacity":  room.Capacity,
			"building":  room.Building,
			"occupants": occupants,
		})
	}
	return c.JSON(out)
}

func GetRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	var occupants []models.Camper
	if err := database.DB.Where("room_id = ?", room.ID).Find(&occupants).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{
		"id":        room.ID,
		"name":      room.Name,
		"capacity":  room.Capacity,
		"building":  room.Building,
		"occupants": occupants,
	})
}

func UpdateRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Building = req.Building
	if err := database.DB.Save(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room"})
	}
	return c.JSON(room)
}

// DeleteRoom unassigns any occupants before removing the room.
func DeleteRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	if err := database.DB.Model(&models.Camper{}).Where("room_id = ?", room.ID).
		Update("room_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unassign occupants"})
	}
	if err := database.DB.Delete(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete room"})
	}
	return c.JSON(fiber.Map{"message": "Room deleted"})
}

type RoomAssignRequest struct {
	CamperID uuid.UUID `json:"camper_id" validate:"required"`
}

// AssignCamperToRoom moves a camper into a room. The assignment lives on the
// camper row, so moving a camper out of their previous room is implicit.
func AssignCamperToRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	var req RoomAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", req.CamperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	var occupants int64
	database.DB.Model(&models.Camper{}).Where("room_id = ? AND id <> ?", room.ID, camper.ID).Count(&occupants)
	if occupants >= int64(room.Capacity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Room is full"})
	}

	if err := database.DB.Model(&camper).Update("room_id", room.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign room"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "room_assigned", map[string]interface{}{
		"room_id":   room.ID.String(),
		"room_name": room.Name,
	}, currentAdminID(c))

	return c.JSON(fiber.Map{"message": "Camper assigned to " + room.Name})
}

func UnassignCamperFromRoom(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}
	if camper.RoomID == nil {
		return c.JSON(fiber.Map{"message": "Camper has no room assignment"})
	}

	if err := database.DB.Model(&camper).Update("room_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unassign room"})
	}
	return c.JSON(fiber.Map{"message": "Camper unassigned"})
}
