package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
)

type TemplateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Subject      string  `json:"subject"`
	Body         string  `json:"body" validate:"required"`
	Trigger      *string `json:"trigger"`
	TemplateType string  `json:"template_type" validate:"omitempty,oneof=email sms"`
	IsActive     *bool   `json:"is_active"`
}

func CreateTemplate(c *fiber.Ctx) error {
	var req TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	templateType := req.TemplateType
	if templateType == "" {
		templateType = "email"
	}
	template := models.EmailTemplate{
		Name:         req.Name,
		Subject:      req.Subject,
		Body:         req.Body,
		Trigger:      req.Trigger,
		TemplateType: templateType,
		IsActive:     true,
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&template).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create template"})
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

func GetTemplates(c *fiber.Ctx) error {
	query := database.DB.Model(&models.EmailTemplate{}).Order("name asc")
	if trigger := c.Query("trigger"); trigger != "" {
		query = query.Where("trigger_name = ?", trigger)
	}
	if templateType := c.Query("type"); templateType != "" {
		query = query.Where("template_type = ?", templateType)
	}

	var templates []models.EmailTemplate
	if err := query.Find(&templates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(templates)
}

func GetTemplate(c *fiber.Ctx) error {
	var template models.EmailTemplate
	if err := database.DB.First(&template, "id = ?", c.Params("templateId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	return c.JSON(template)
}

func UpdateTemplate(c *fiber.Ctx) error {
	var template models.EmailTemplate
	if err := database.DB.First(&template, "id = ?", c.Params("templateId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}

	var req TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	template.Name = req.Name
	template.Subject = req.Subject
	template.Body = req.Body
	template.Trigger = req.Trigger
	if req.TemplateType != "" {
		template.TemplateType = req.TemplateType
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&template).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update template"})
	}
	return c.JSON(template)
}

func DeleteTemplate(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("templateId")).Delete(&models.EmailTemplate{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}
	return c.JSON(fiber.Map{"message": "Template deleted"})
}

// SeedDefaultTemplates inserts the stock templates when the table is empty.
// Existing templates, edited or not, are never overwritten.
func SeedDefaultTemplates(c *fiber.Ctx) error {
	seeded := database.SeedDefaultTemplates(database.DB)
	if !seeded {
		return c.JSON(fiber.Map{"seeded": false, "message": "Templates already exist"})
	}
	return c.JSON(fiber.Map{"seeded": true, "message": "Default templates created"})
}

// PreviewTemplate renders a template body against a real camper, or sample
// data when no camper_id is given.
func PreviewTemplate(c *fiber.Ctx) error {
	var template models.EmailTemplate
	if err := database.DB.First(&template, "id = ?", c.Params("templateId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}

	var data map[string]string
	if camperID := c.Query("camper_id"); camperID != "" {
		var camper models.Camper
		if err := database.DB.First(&camper, "id = ?", camperID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
		}
		data = services.BuildCamperMergeData(database.DB, &camper)
	} else {
		data = services.SampleMergeData()
		for key, value := range services.CampMergeData(database.DB) {
			data[key] = value
		}
	}

	subject, body := services.RenderTemplate(template.Subject, template.Body, data)
	return c.JSON(fiber.Map{
		"template_name": template.Name,
		"template_type": template.TemplateType,
		"subject":       subject,
		"body":          body,
	})
}

type PreviewContentRequest struct {
	Subject  string  `json:"subject"`
	Body     string  `json:"body" validate:"required"`
	CamperID *string `json:"camper_id"`
}

// PreviewTemplateContent renders raw subject/body the editor has not saved
// yet, against a real camper or sample data.
func PreviewTemplateContent(c *fiber.Ctx) error {
	var req PreviewContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var data map[string]string
	if req.CamperID != nil && *req.CamperID != "" {
		var camper models.Camper
		if err := database.DB.First(&camper, "id = ?", *req.CamperID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
		}
		data = services.BuildCamperMergeData(database.DB, &camper)
	} else {
		data = services.SampleMergeData()
		for key, value := range services.CampMergeData(database.DB) {
			data[key] = value
		}
	}

	subject, body := services.RenderTemplate(req.Subject, req.Body, data)
	return c.JSON(fiber.Map{"subject": subject, "body": body})
}

// GetMergeFields returns the token vocabulary for the template editor.
func GetMergeFields(c *fiber.Ctx) error {
	return c.JSON(services.TemplateMergeFields)
}
