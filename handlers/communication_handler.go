package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetCommunications(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Communication{}).Order("created_at desc")
	if camperID := c.Query("camper_id"); camperID != "" {
		query = query.Where("camper_id = ?", camperID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if commType := c.Query("type"); commType != "" {
		query = query.Where("type = ?", commType)
	}

	var list []models.Communication
	if err := query.Limit(200).Find(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(list)
}

type SendCommunicationRequest struct {
	CamperID   uuid.UUID  `json:"camper_id" validate:"required"`
	Type       string     `json:"type" validate:"required,oneof=email sms"`
	Subject    *string    `json:"subject"`
	Message    string     `json:"message" validate:"required"`
	TemplateID *uuid.UUID `json:"template_id"`
}

// SendCommunication queues an ad-hoc outbound message to a camper's parent.
// Merge tokens in the subject and body are rendered against the camper before
// queueing.
func SendCommunication(c *fiber.Ctx) error {
	var req SendCommunicationRequest
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
	if req.Type == "email" && (camper.ParentEmail == nil || *camper.ParentEmail == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Camper has no parent email on file"})
	}

	data := services.BuildCamperMergeData(database.DB, &camper)
	subjectIn := ""
	if req.Subject != nil {
		subjectIn = *req.Subject
	}
	subject, body := services.RenderTemplate(subjectIn, req.Message, data)

	comm := models.Communication{
		CamperID:       camper.ID,
		Type:           req.Type,
		Subject:        &subject,
		Message:        body,
		Direction:      "outbound",
		Status:         "pending",
		RecipientEmail: camper.ParentEmail,
		TemplateID:     req.TemplateID,
	}
	if phone := camper.ParentPhone(); phone != "" {
		comm.RecipientPhone = &phone
	}
	if err := database.DB.Create(&comm).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to queue communication"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "email_queued", map[string]interface{}{
		"type":     "manual",
		"email_id": comm.ID.String(),
	}, currentAdminID(c))

	return c.Status(fiber.StatusCreated).JSON(comm)
}

type CommunicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending cancelled"`
}

// UpdateCommunicationStatus cancels a queued message or puts a failed one
// back in the queue. Sent messages are immutable history.
func UpdateCommunicationStatus(c *fiber.Ctx) error {
	var comm models.Communication
	if err := database.DB.First(&comm, "id = ?", c.Params("commId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Communication not found"})
	}
	if comm.Status == "sent" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot modify a sent communication"})
	}

	var req CommunicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.DB.Model(&comm).Update("status", req.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update communication"})
	}
	comm.Status = req.Status
	return c.JSON(comm)
}

type LogInboundRequest struct {
	CamperID uuid.UUID `json:"camper_id" validate:"required"`
	Type     string    `json:"type" validate:"required,oneof=email sms phone"`
	Subject  *string   `json:"subject"`
	Message  string    `json:"message" validate:"required"`
}

// LogInboundCommunication records a call or message received from a parent so
// the camper's communication history stays complete.
func LogInboundCommunication(c *fiber.Ctx) error {
	var req LogInboundRequest
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

	comm := models.Communication{
		CamperID:  camper.ID,
		Type:      req.Type,
		Subject:   req.Subject,
		Message:   req.Message,
		Direction: "inbound",
		Status:    "received",
	}
	if err := database.DB.Create(&comm).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log communication"})
	}
	return c.Status(fiber.StatusCreated).JSON(comm)
}
