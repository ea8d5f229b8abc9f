package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/campbaraisa/camp_admin/utils"
	"github.com/gofiber/fiber/v2"
)

type CamperRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	DateOfBirth *string `json:"date_of_birth"`

	Address      *string `json:"address"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`

	Yeshiva         *string `json:"yeshiva"`
	YeshivaOther    *string `json:"yeshiva_other"`
	Grade           *string `json:"grade"`
	Menahel         *string `json:"menahel"`
	RebbeName       *string `json:"rebbe_name"`
	RebbePhone      *string `json:"rebbe_phone"`
	PreviousYeshiva *string `json:"previous_yeshiva"`

	Camp2024 *string `json:"camp_2024"`
	Camp2023 *string `json:"camp_2023"`

	PhotoURL *string `json:"photo_url"`

	Allergies             *string `json:"allergies"`
	MedicalInfo           *string `json:"medical_info"`
	DietaryRestrictions   *string `json:"dietary_restrictions"`
	Medications           *string `json:"medications"`
	DoctorName            *string `json:"doctor_name"`
	DoctorPhone           *string `json:"doctor_phone"`
	InsuranceCompany      *string `json:"insurance_company"`
	InsurancePolicyNumber *string `json:"insurance_policy_number"`

	EmergencyContactName         *string `json:"emergency_contact_name"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship"`

	RulesAgreed     *bool   `json:"rules_agreed"`
	RulesSignature  *string `json:"rules_signature"`
	WaiverAgreed    *bool   `json:"waiver_agreed"`
	WaiverSignature *string `json:"waiver_signature"`

	DueDate *string `json:"due_date"`
	Notes   *string `json:"notes"`

	ParentEmail      *string `json:"parent_email" validate:"omitempty,email"`
	FatherTitle      *string `json:"father_title"`
	FatherFirstName  *string `json:"father_first_name"`
	FatherLastName   *string `json:"father_last_name"`
	FatherCell       *string `json:"father_cell"`
	FatherWorkPhone  *string `json:"father_work_phone"`
	FatherOccupation *string `json:"father_occupation"`
	MotherTitle      *string `json:"mother_title"`
	MotherFirstName  *string `json:"mother_first_name"`
	MotherLastName   *string `json:"mother_last_name"`
	MotherCell       *string `json:"mother_cell"`
	MotherWorkPhone  *string `json:"mother_work_phone"`
	MotherOccupation *string `json:"mother_occupation"`
	HomePhone        *string `json:"home_phone"`

	PaymentPlan        *string `json:"payment_plan"`
	PaymentPlanDetails *string `json:"payment_plan_details"`
}

func applyCamperRequest(camper *models.Camper, req *CamperRequest) {
	camper.FirstName = req.FirstName
	camper.LastName = req.LastName
	camper.DateOfBirth = req.DateOfBirth
	camper.Address = req.Address
	camper.AddressLine2 = req.AddressLine2
	camper.City = req.City
	camper.State = req.State
	camper.ZipCode = req.ZipCode
	camper.Yeshiva = req.Yeshiva
	camper.YeshivaOther = req.YeshivaOther
	camper.Grade = req.Grade
	camper.Menahel = req.Menahel
	camper.RebbeName = req.RebbeName
	camper.RebbePhone = req.RebbePhone
	camper.PreviousYeshiva = req.PreviousYeshiva
	camper.Camp2024 = req.Camp2024
	camper.Camp2023 = req.Camp2023
	camper.PhotoURL = req.PhotoURL
	camper.Allergies = req.Allergies
	camper.MedicalInfo = req.MedicalInfo
	camper.DietaryRestrictions = req.DietaryRestrictions
	camper.Medications = req.Medications
	camper.DoctorName = req.DoctorName
	camper.DoctorPhone = req.DoctorPhone
	camper.InsuranceCompany = req.InsuranceCompany
	camper.InsurancePolicyNumber = req.InsurancePolicyNumber
	camper.EmergencyContactName = req.EmergencyContactName
	camper.EmergencyContactPhone = req.EmergencyContactPhone
	camper.EmergencyContactRelationship = req.EmergencyContactRelationship
	if req.RulesAgreed != nil {
		camper.RulesAgreed = *req.RulesAgreed
	}
	camper.RulesSignature = req.RulesSignature
	if req.WaiverAgreed != nil {
		camper.WaiverAgreed = *req.WaiverAgreed
	}
	camper.WaiverSignature = req.WaiverSignature
	camper.DueDate = req.DueDate
	camper.Notes = req.Notes
	camper.ParentEmail = req.ParentEmail
	camper.FatherTitle = req.FatherTitle
	camper.FatherFirstName = req.FatherFirstName
	camper.FatherLastName = req.FatherLastName
	camper.FatherCell = req.FatherCell
	camper.FatherWorkPhone = req.FatherWorkPhone
	camper.FatherOccupation = req.FatherOccupation
	camper.MotherTitle = req.MotherTitle
	camper.MotherFirstName = req.MotherFirstName
	camper.MotherLastName = req.MotherLastName
	camper.MotherCell = req.MotherCell
	camper.MotherWorkPhone = req.MotherWorkPhone
	camper.MotherOccupation = req.MotherOccupation
	camper.HomePhone = req.HomePhone
	camper.PaymentPlan = req.PaymentPlan
	camper.PaymentPlanDetails = req.PaymentPlanDetails
}

func CreateCamper(c *fiber.Ctx) error {
	var req CamperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	camper := models.Camper{
		Status:      "Applied",
		PortalToken: utils.GeneratePortalToken(req.LastName),
	}
	applyCamperRequest(&camper, &req)

	if err := database.DB.Create(&camper).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create camper"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "created", map[string]interface{}{
		"name": camper.FullName(),
	}, currentAdminID(c))

	return c.Status(fiber.StatusCreated).JSON(camper)
}

// SubmitApplication is the public intake endpoint behind the parent-facing
// application form. No auth; the camper lands in the Applied column.
func SubmitApplication(c *fiber.Ctx) error {
	var req CamperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	camper := models.Camper{
		Status:      "Applied",
		PortalToken: utils.GeneratePortalToken(req.LastName),
	}
	applyCamperRequest(&camper, &req)

	if err := database.DB.Create(&camper).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit application"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "camper_created", map[string]interface{}{
		"source": "public_application",
	}, nil)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Application submitted successfully", "id": camper.ID})
}

func GetCampers(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Camper{}).Preload("Groups").Preload("Room")
	if grade := c.Query("grade"); grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if yeshiva := c.Query("yeshiva"); yeshiva != "" {
		query = query.Where("yeshiva = ?", yeshiva)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var campers []models.Camper
	if err := query.Find(&campers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(campers)
}

func GetCamper(c *fiber.Ctx) error {
	var camper models.Camper
	err := database.DB.Preload("Groups").Preload("Room").First(&camper, "id = ?", c.Params("camperId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}
	return c.JSON(camper)
}

func UpdateCamper(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	var req CamperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applyCamperRequest(&camper, &req)
	if err := database.DB.Save(&camper).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update camper"})
	}
	return c.JSON(camper)
}

// UpdateCamperStatus moves a camper across the kanban board. A bound template
// queues a notification unless skip_email is set; the rendered content comes
// back so the UI can show what was queued.
func UpdateCamperStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	skipEmail := c.QueryBool("skip_email", false)

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	result, err := services.ApplyStatusChange(database.DB, &camper, status, skipEmail, currentAdminID(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "Invalid status",
				"statuses": services.KanbanStatuses,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
	}

	resp := fiber.Map{
		"message":         "Status updated to " + status,
		"email_triggered": result.Notified,
	}
	if result.Notified {
		resp["email_content"] = fiber.Map{"subject": result.Subject, "body": result.Body}
	}
	if result.Warning != nil {
		resp["warning"] = *result.Warning
	}
	return c.JSON(resp)
}

// GetStatusEmailPreview renders what a status change would send, without
// touching the camper, the queue or the log.
func GetStatusEmailPreview(c *fiber.Ctx) error {
	newStatus := c.Query("new_status")

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	preview, err := services.PreviewStatusEmail(database.DB, &camper, newStatus)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build preview"})
	}
	return c.JSON(preview)
}

// DeleteCamper is a soft delete into the trash; the row keeps everything and
// can be restored.
func DeleteCamper(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	adminID := currentAdminID(c)
	// One statement so a trashed row always records who deleted it.
	err := database.DB.Model(&camper).Updates(map[string]interface{}{
		"deleted_by": adminID,
		"deleted_at": time.Now().UTC(),
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete camper"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "camper_deleted", map[string]interface{}{
		"camper_name": camper.FullName(),
	}, adminID)

	return c.JSON(fiber.Map{"message": "Camper moved to trash"})
}

func GetTrash(c *fiber.Ctx) error {
	var trashed []models.Camper
	err := database.DB.Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at desc").
		Find(&trashed).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(trashed)
}

func RestoreCamper(c *fiber.Ctx) error {
	res := database.DB.Unscoped().Model(&models.Camper{}).
		Where("id = ? AND deleted_at IS NOT NULL", c.Params("camperId")).
		Updates(map[string]interface{}{"deleted_at": nil, "deleted_by": nil})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found in trash"})
	}

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err == nil {
		services.LogActivity(database.DB, "camper", camper.ID, "camper_restored", map[string]interface{}{
			"camper_name": camper.FullName(),
		}, currentAdminID(c))
	}

	return c.JSON(fiber.Map{"message": "Camper restored"})
}

func PermanentDeleteCamper(c *fiber.Ctx) error {
	res := database.DB.Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", c.Params("camperId")).
		Delete(&models.Camper{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found in trash"})
	}
	return c.JSON(fiber.Map{"message": "Camper permanently deleted"})
}

// GlobalSearch matches campers on name, yeshiva, grade and embedded parent
// contact fields.
func GlobalSearch(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query must be at least 2 characters"})
	}
	pattern := "%" + strings.ToLower(q) + "%"

	var campers []models.Camper
	err := database.DB.Where(
		database.DB.Where("LOWER(first_name) LIKE ?", pattern).
			Or("LOWER(last_name) LIKE ?", pattern).
			Or("LOWER(yeshiva) LIKE ?", pattern).
			Or("LOWER(grade) LIKE ?", pattern).
			Or("LOWER(father_first_name) LIKE ?", pattern).
			Or("LOWER(father_last_name) LIKE ?", pattern).
			Or("LOWER(mother_first_name) LIKE ?", pattern).
			Or("LOWER(mother_last_name) LIKE ?", pattern).
			Or("LOWER(parent_email) LIKE ?", pattern).
			Or("father_cell LIKE ?", pattern).
			Or("mother_cell LIKE ?", pattern),
	).Limit(30).Find(&campers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	results := make([]fiber.Map, 0, len(campers))
	for i := range campers {
		camper := &campers[i]
		results = append(results, fiber.Map{
			"id":           camper.ID,
			"first_name":   camper.FirstName,
			"last_name":    camper.LastName,
			"grade":        camper.Grade,
			"yeshiva":      camper.Yeshiva,
			"status":       camper.Status,
			"photo_url":    camper.PhotoURL,
			"parent_name":  camper.ParentName(),
			"parent_email": camper.ParentEmail,
			"parent_phone": camper.ParentPhone(),
			"portal_token": camper.PortalToken,
		})
	}
	return c.JSON(fiber.Map{"campers": results})
}

// GetKanbanBoard returns campers grouped by pipeline stage with a live
// balance computed from their invoices.
func GetKanbanBoard(c *fiber.Ctx) error {
	var campers []models.Camper
	if err := database.DB.Find(&campers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var invoices []models.Invoice
	if err := database.DB.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	balances := map[string]float64{}
	for _, inv := range invoices {
		balances[inv.CamperID.String()] += inv.Amount - inv.PaidAmount
	}

	board := map[string][]fiber.Map{}
	for _, status := range services.KanbanStatuses {
		board[status] = []fiber.Map{}
	}

	for i := range campers {
		camper := &campers[i]
		if _, ok := board[camper.Status]; !ok {
			continue
		}
		board[camper.Status] = append(board[camper.Status], fiber.Map{
			"id":           camper.ID,
			"first_name":   camper.FirstName,
			"last_name":    camper.LastName,
			"grade":        camper.Grade,
			"yeshiva":      camper.Yeshiva,
			"status":       camper.Status,
			"photo_url":    camper.PhotoURL,
			"parent_name":  camper.ParentName(),
			"parent_email": camper.ParentEmail,
			"parent_phone": camper.ParentPhone(),
			"portal_token": camper.PortalToken,
			"balance":      balances[camper.ID.String()],
		})
	}

	return c.JSON(fiber.Map{"statuses": services.KanbanStatuses, "board": board})
}
