package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
)

// GetActivityFeed returns the newest activity across all entities.
func GetActivityFeed(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := database.DB.Model(&models.ActivityLog{}).Order("created_at desc").Limit(limit)
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []models.ActivityLog
	if err := query.Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(logs)
}

// GetCamperActivity returns one camper's full audit trail, newest first.
func GetCamperActivity(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	var logs []models.ActivityLog
	err := database.DB.
		Where("entity_type = ? AND entity_id = ?", "camper", camper.ID).
		Order("created_at desc").
		Find(&logs).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(logs)
}

type NoteRequest struct {
	Text string `json:"text" validate:"required"`
}

// AddCamperNote appends a free-form note to the camper's activity trail.
func AddCamperNote(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	var req NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry, err := services.LogActivity(database.DB, "camper", camper.ID, "note_added", map[string]interface{}{
		"text": req.Text,
	}, currentAdminID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add note"})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
