package services

import (
	"strings"

	config "github.com/campbaraisa/camp_admin/configs"
	"github.com/campbaraisa/camp_admin/models"
	"gorm.io/gorm"
)

// MergeField describes one {{token}} available to template authors.
type MergeField struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// TemplateMergeFields is the static vocabulary exposed to the template editor,
// grouped by subject area. Unknown tokens are not rejected at render time;
// this list exists for UI authoring only.
var TemplateMergeFields = map[string][]MergeField{
	"parent": {
		{Field: "{{parent_father_title}}", Label: "Father Title (Rabbi, Mr, etc.)"},
		{Field: "{{parent_father_first_name}}", Label: "Father First Name"},
		{Field: "{{parent_father_last_name}}", Label: "Father Last Name"},
		{Field: "{{parent_father_cell}}", Label: "Father Cell Phone"},
		{Field: "{{parent_mother_first_name}}", Label: "Mother First Name"},
		{Field: "{{parent_mother_last_name}}", Label: "Mother Last Name"},
		{Field: "{{parent_mother_cell}}", Label: "Mother Cell Phone"},
		{Field: "{{parent_email}}", Label: "Parent Email"},
		{Field: "{{parent_address}}", Label: "Parent Address"},
	},
	"camper": {
		{Field: "{{camper_first_name}}", Label: "Camper First Name"},
		{Field: "{{camper_last_name}}", Label: "Camper Last Name"},
		{Field: "{{camper_full_name}}", Label: "Camper Full Name"},
		{Field: "{{camper_grade}}", Label: "Camper Grade"},
		{Field: "{{camper_yeshiva}}", Label: "Camper Yeshiva"},
		{Field: "{{camper_status}}", Label: "Camper Status"},
	},
	"billing": {
		{Field: "{{amount_due}}", Label: "Amount Due"},
		{Field: "{{total_balance}}", Label: "Total Balance"},
		{Field: "{{due_date}}", Label: "Payment Due Date"},
		{Field: "{{payment_link}}", Label: "Payment Portal Link"},
	},
	"camp": {
		{Field: "{{camp_name}}", Label: "Camp Name"},
		{Field: "{{camp_email}}", Label: "Camp Email"},
		{Field: "{{camp_phone}}", Label: "Camp Phone"},
	},
}

// RenderTemplate substitutes {{key}} tokens in subject and body for every key
// present in data. Keys absent from data are left verbatim so a partial
// context still renders legibly. Values must be pre-formatted display strings.
func RenderTemplate(subject, body string, data map[string]string) (string, string) {
	for key, value := range data {
		placeholder := "{{" + key + "}}"
		subject = strings.ReplaceAll(subject, placeholder, value)
		body = strings.ReplaceAll(body, placeholder, value)
	}
	return subject, body
}

// BuildCamperMergeData assembles the full merge context for one camper:
// camp identity from settings, embedded parent/camper fields, and billing
// figures derived from the camper's open invoices.
func BuildCamperMergeData(db *gorm.DB, camper *models.Camper) map[string]string {
	data := CampMergeData(db)

	data["camper_first_name"] = camper.FirstName
	data["camper_last_name"] = camper.LastName
	data["camper_full_name"] = camper.FullName()
	data["camper_grade"] = strValue(camper.Grade)
	data["camper_yeshiva"] = strValue(camper.Yeshiva)
	data["camper_status"] = camper.Status
	data["due_date"] = strValue(camper.DueDate)

	data["parent_father_title"] = strValue(camper.FatherTitle)
	data["parent_father_first_name"] = strValue(camper.FatherFirstName)
	data["parent_father_last_name"] = strValue(camper.FatherLastName)
	data["parent_father_cell"] = strValue(camper.FatherCell)
	data["parent_mother_first_name"] = strValue(camper.MotherFirstName)
	data["parent_mother_last_name"] = strValue(camper.MotherLastName)
	data["parent_mother_cell"] = strValue(camper.MotherCell)
	data["parent_email"] = strValue(camper.ParentEmail)
	data["parent_address"] = strValue(camper.Address)

	data["payment_link"] = config.Config("FRONTEND_URL") + "/portal/" + camper.PortalToken
	data["total_balance"] = FormatCurrency(camper.TotalBalance)

	var invoices []models.Invoice
	if err := db.Where("camper_id = ? AND status <> ?", camper.ID, "paid").Find(&invoices).Error; err == nil {
		amountDue := 0.0
		for _, inv := range invoices {
			amountDue += inv.Amount - inv.PaidAmount
		}
		data["amount_due"] = FormatCurrency(amountDue)
	}

	return data
}

// CampMergeData returns just the camp-identity tokens from settings.
func CampMergeData(db *gorm.DB) map[string]string {
	data := map[string]string{
		"camp_name":  "Camp Baraisa",
		"camp_email": "",
		"camp_phone": "",
	}
	var settings models.Settings
	if err := db.First(&settings).Error; err == nil {
		data["camp_name"] = settings.CampName
		data["camp_email"] = strValue(settings.CampEmail)
		data["camp_phone"] = strValue(settings.CampPhone)
	}
	return data
}

// SampleMergeData backs template previews when no camper is selected.
func SampleMergeData() map[string]string {
	return map[string]string{
		"camper_first_name":        "Sample",
		"camper_last_name":         "Camper",
		"camper_full_name":         "Sample Camper",
		"camper_grade":             "11th Grade",
		"camper_yeshiva":           "Sample Yeshiva",
		"camper_status":            "Applied",
		"parent_father_title":      "Rabbi",
		"parent_father_first_name": "John",
		"parent_father_last_name":  "Doe",
		"parent_father_cell":       "(555) 123-4567",
		"parent_mother_first_name": "Jane",
		"parent_mother_last_name":  "Doe",
		"parent_mother_cell":       "(555) 987-6543",
		"parent_email":             "parent@example.com",
		"parent_address":           "123 Main St, City, State 12345",
		"payment_link":             "https://portal.example.com/abc123",
		"amount_due":               "$2,500.00",
		"total_balance":            "$5,000.00",
		"due_date":                 "March 15, 2026",
	}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
