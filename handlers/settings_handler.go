package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Settings not initialized"})
	}
	return c.JSON(settings)
}

type SettingsRequest struct {
	CampName       string  `json:"camp_name" validate:"required"`
	CampEmail      *string `json:"camp_email" validate:"omitempty,email"`
	CampPhone      *string `json:"camp_phone"`
	QuickbooksSync *bool   `json:"quickbooks_sync"`
	TwilioEnabled  *bool   `json:"twilio_enabled"`
	GmailEnabled   *bool   `json:"gmail_enabled"`
}

func UpdateSettings(c *fiber.Ctx) error {
	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Settings not initialized"})
	}

	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	settings.CampName = req.CampName
	settings.CampEmail = req.CampEmail
	settings.CampPhone = req.CampPhone
	if req.QuickbooksSync != nil {
		settings.QuickbooksSync = *req.QuickbooksSync
	}
	if req.TwilioEnabled != nil {
		settings.TwilioEnabled = *req.TwilioEnabled
	}
	if req.GmailEnabled != nil {
		settings.GmailEnabled = *req.GmailEnabled
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update settings"})
	}
	return c.JSON(settings)
}

type FeeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description *string `json:"description"`
	IsDefault   *bool   `json:"is_default"`
}

func GetFees(c *fiber.Ctx) error {
	var fees []models.Fee
	if err := database.DB.Order("is_default desc, name asc").Find(&fees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fees)
}

func CreateFee(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fee := models.Fee{Name: req.Name, Amount: req.Amount, Description: req.Description}
	if req.IsDefault != nil {
		fee.IsDefault = *req.IsDefault
	}
	if fee.IsDefault {
		database.DB.Model(&models.Fee{}).Where("is_default = ?", true).Update("is_default", false)
	}

	if err := database.DB.Create(&fee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create fee"})
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

func UpdateFee(c *fiber.Ctx) error {
	var fee models.Fee
	if err := database.DB.First(&fee, "id = ?", c.Params("feeId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee not found"})
	}

	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fee.Name = req.Name
	fee.Amount = req.Amount
	fee.Description = req.Description
	if req.IsDefault != nil {
		if *req.IsDefault && !fee.IsDefault {
			database.DB.Model(&models.Fee{}).Where("is_default = ?", true).Update("is_default", false)
		}
		fee.IsDefault = *req.IsDefault
	}

	if err := database.DB.Save(&fee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update fee"})
	}
	return c.JSON(fee)
}

func DeleteFee(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("feeId")).Delete(&models.Fee{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee not found"})
	}
	return c.JSON(fiber.Map{"message": "Fee deleted"})
}
