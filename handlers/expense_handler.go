package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/gofiber/fiber/v2"
)

type ExpenseRequest struct {
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Vendor      *string `json:"vendor"`
}

func CreateExpense(c *fiber.Ctx) error {
	var req ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	expense := models.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Vendor:      req.Vendor,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expense"})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func GetExpenses(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Expense{}).Order("date desc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(expenses)
}

func UpdateExpense(c *fiber.Ctx) error {
	var expense models.Expense
	if err := database.DB.First(&expense, "id = ?", c.Params("expenseId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}

	var req ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Description = req.Description
	expense.Date = req.Date
	expense.Vendor = req.Vendor
	if err := database.DB.Save(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update expense"})
	}
	return c.JSON(expense)
}

func DeleteExpense(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("expenseId")).Delete(&models.Expense{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}

// GetExpenseCategories returns the distinct categories in use, for the
// expense form's autocomplete.
func GetExpenseCategories(c *fiber.Ctx) error {
	var categories []string
	err := database.DB.Model(&models.Expense{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(categories)
}
