package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats backs the admin home screen: enrollment counts per
// pipeline stage plus headline billing figures.
func GetDashboardStats(c *fiber.Ctx) error {
	var totalCampers int64
	if err := database.DB.Model(&models.Camper{}).Count(&totalCampers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	statusCounts := map[string]int64{}
	for _, status := range services.KanbanStatuses {
		statusCounts[status] = 0
	}
	var rows []struct {
		Status string
		Count  int64
	}
	database.DB.Model(&models.Camper{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows)
	for _, row := range rows {
		statusCounts[row.Status] = row.Count
	}

	var billed, collected struct{ Total float64 }
	database.DB.Model(&models.Invoice{}).Select("COALESCE(SUM(amount), 0) as total").Scan(&billed)
	database.DB.Model(&models.Invoice{}).Select("COALESCE(SUM(paid_amount), 0) as total").Scan(&collected)

	var overdueInvoices int64
	database.DB.Model(&models.Invoice{}).
		Where("status <> ? AND due_date IS NOT NULL AND due_date < CURRENT_DATE", "paid").
		Count(&overdueInvoices)

	return c.JSON(fiber.Map{
		"total_campers":    totalCampers,
		"status_counts":    statusCounts,
		"total_billed":     billed.Total,
		"total_collected":  collected.Total,
		"outstanding":      billed.Total - collected.Total,
		"overdue_invoices": overdueInvoices,
	})
}

// GetFinancialSummary is the money view: income by method, expenses by
// category, and the resulting net.
func GetFinancialSummary(c *fiber.Ctx) error {
	var methodRows []struct {
		Method string
		Total  float64
		Count  int64
	}
	database.DB.Model(&models.Payment{}).
		Select("method, COALESCE(SUM(amount), 0) as total, count(*) as count").
		Where("status = ?", "completed").
		Group("method").
		Scan(&methodRows)

	incomeByMethod := map[string]fiber.Map{}
	totalIncome := 0.0
	for _, row := range methodRows {
		incomeByMethod[row.Method] = fiber.Map{"total": row.Total, "count": row.Count}
		totalIncome += row.Total
	}

	var feeRow struct{ Total float64 }
	database.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(fee_amount), 0) as total").
		Where("status = ? AND include_fee = ?", "completed", true).
		Scan(&feeRow)

	var categoryRows []struct {
		Category string
		Total    float64
	}
	database.DB.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) as total").
		Group("category").
		Scan(&categoryRows)

	expensesByCategory := map[string]float64{}
	totalExpenses := 0.0
	for _, row := range categoryRows {
		expensesByCategory[row.Category] = row.Total
		totalExpenses += row.Total
	}

	return c.JSON(fiber.Map{
		"total_income":         totalIncome,
		"income_by_method":     incomeByMethod,
		"card_fees_collected":  feeRow.Total,
		"total_expenses":       totalExpenses,
		"expenses_by_category": expensesByCategory,
		"net":                  totalIncome - totalExpenses,
	})
}
