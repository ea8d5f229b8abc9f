package handlers

import (
	"encoding/json"

	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/gofiber/fiber/v2"
)

type SavedReportRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description *string           `json:"description"`
	Columns     []string          `json:"columns" validate:"required,min=1"`
	Filters     map[string]string `json:"filters"`
	SortBy      *string           `json:"sort_by"`
	SortOrder   string            `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// reportColumns whitelists the camper fields a report may project, keyed by
// the column name the UI uses.
var reportColumns = map[string]func(*models.Camper) interface{}{
	"first_name":    func(cm *models.Camper) interface{} { return cm.FirstName },
	"last_name":     func(cm *models.Camper) interface{} { return cm.LastName },
	"full_name":     func(cm *models.Camper) interface{} { return cm.FullName() },
	"status":        func(cm *models.Camper) interface{} { return cm.Status },
	"grade":         func(cm *models.Camper) interface{} { return cm.Grade },
	"yeshiva":       func(cm *models.Camper) interface{} { return cm.Yeshiva },
	"menahel":       func(cm *models.Camper) interface{} { return cm.Menahel },
	"parent_name":   func(cm *models.Camper) interface{} { return cm.ParentName() },
	"parent_email":  func(cm *models.Camper) interface{} { return cm.ParentEmail },
	"parent_phone":  func(cm *models.Camper) interface{} { return cm.ParentPhone() },
	"home_phone":    func(cm *models.Camper) interface{} { return cm.HomePhone },
	"address":       func(cm *models.Camper) interface{} { return cm.Address },
	"city":          func(cm *models.Camper) interface{} { return cm.City },
	"state":         func(cm *models.Camper) interface{} { return cm.State },
	"zip_code":      func(cm *models.Camper) interface{} { return cm.ZipCode },
	"allergies":     func(cm *models.Camper) interface{} { return cm.Allergies },
	"medical_info":  func(cm *models.Camper) interface{} { return cm.MedicalInfo },
	"total_balance": func(cm *models.Camper) interface{} { return cm.TotalBalance },
	"total_paid":    func(cm *models.Camper) interface{} { return cm.TotalPaid },
	"payment_plan":  func(cm *models.Camper) interface{} { return cm.PaymentPlan },
	"due_date":      func(cm *models.Camper) interface{} { return cm.DueDate },
	"portal_token":  func(cm *models.Camper) interface{} { return cm.PortalToken },
}

// reportFilters whitelists filterable fields.
var reportFilters = map[string]string{
	"status":  "status",
	"grade":   "grade",
	"yeshiva": "yeshiva",
}

// reportSortColumns whitelists sortable fields.
var reportSortColumns = map[string]string{
	"first_name":    "first_name",
	"last_name":     "last_name",
	"status":        "status",
	"grade":         "grade",
	"yeshiva":       "yeshiva",
	"total_balance": "total_balance",
	"total_paid":    "total_paid",
}

func CreateSavedReport(c *fiber.Ctx) error {
	var req SavedReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	for _, col := range req.Columns {
		if _, ok := reportColumns[col]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown column: " + col})
		}
	}

	columns, _ := json.Marshal(req.Columns)
	filters := []byte("{}")
	if req.Filters != nil {
		filters, _ = json.Marshal(req.Filters)
	}

	report := models.SavedReport{
		Name:        req.Name,
		Description: req.Description,
		Columns:     string(columns),
		Filters:     string(filters),
		SortBy:      req.SortBy,
		SortOrder:   "asc",
		CreatedBy:   currentAdminID(c),
	}
	if req.SortOrder != "" {
		report.SortOrder = req.SortOrder
	}

	if err := database.DB.Create(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save report"})
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func GetSavedReports(c *fiber.Ctx) error {
	var reports []models.SavedReport
	if err := database.DB.Order("name asc").Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reports)
}

func DeleteSavedReport(c *fiber.Ctx) error {
	res := database.DB.Where("id = ?", c.Params("reportId")).Delete(&models.SavedReport{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	return c.JSON(fiber.Map{"message": "Report deleted"})
}

// RunSavedReport executes a saved report definition and returns its rows.
func RunSavedReport(c *fiber.Ctx) error {
	var report models.SavedReport
	if err := database.DB.First(&report, "id = ?", c.Params("reportId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	query := database.DB.Model(&models.Camper{})
	for field, value := range report.FilterMap() {
		column, ok := reportFilters[field]
		if !ok {
			continue
		}
		query = query.Where(column+" = ?", value)
	}
	if report.SortBy != nil {
		if column, ok := reportSortColumns[*report.SortBy]; ok {
			order := "asc"
			if report.SortOrder == "desc" {
				order = "desc"
			}
			query = query.Order(column + " " + order)
		}
	} else {
		query = query.Order("last_name asc")
	}

	var campers []models.Camper
	if err := query.Find(&campers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	columns := report.ColumnList()
	rows := make([]fiber.Map, 0, len(campers))
	for i := range campers {
		row := fiber.Map{"id": campers[i].ID}
		for _, col := range columns {
			if project, ok := reportColumns[col]; ok {
				row[col] = project(&campers[i])
			}
		}
		rows = append(rows, row)
	}

	return c.JSON(fiber.Map{
		"report_name": report.Name,
		"columns":     columns,
		"rows":        rows,
	})
}
