package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/campbaraisa/camp_admin/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func trashTestApp(adminID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": adminID.String(),
		})
		c.Locals("user", token)
		return c.Next()
	})
	app.Delete("/api/v1/campers/:camperId", DeleteCamper)
	app.Post("/api/v1/campers/trash/:camperId/restore", RestoreCamper)
	return app
}

func TestDeleteCamperStampsDeletedBy(t *testing.T) {
	db := setupTestDB(t)

	camper := models.Camper{FirstName: "Yanky", LastName: "Stern", PortalToken: "stern-trash"}
	if err := db.Create(&camper).Error; err != nil {
		t.Fatalf("create camper: %v", err)
	}

	adminID := uuid.New()
	app := trashTestApp(adminID)

	req := httptest.NewRequest("DELETE", "/api/v1/campers/"+camper.ID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var trashed models.Camper
	if err := db.Unscoped().First(&trashed, "id = ?", camper.ID).Error; err != nil {
		t.Fatalf("reload trashed camper: %v", err)
	}
	if !trashed.DeletedAt.Valid {
		t.Error("expected deleted_at to be set")
	}
	if trashed.DeletedBy == nil || *trashed.DeletedBy != adminID {
		t.Errorf("deleted_by = %v, want %s", trashed.DeletedBy, adminID)
	}

	// Trashed rows stay out of scoped queries.
	var count int64
	db.Model(&models.Camper{}).Where("id = ?", camper.ID).Count(&count)
	if count != 0 {
		t.Errorf("trashed camper still visible in scoped queries")
	}
}

func TestRestoreCamperClearsTrashStamp(t *testing.T) {
	db := setupTestDB(t)

	camper := models.Camper{FirstName: "Duvid", LastName: "Gross", PortalToken: "gross-trash"}
	if err := db.Create(&camper).Error; err != nil {
		t.Fatalf("create camper: %v", err)
	}

	adminID := uuid.New()
	app := trashTestApp(adminID)

	req := httptest.NewRequest("DELETE", "/api/v1/campers/"+camper.ID.String(), nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("delete request failed: %v", err)
	}

	req = httptest.NewRequest("POST", "/api/v1/campers/trash/"+camper.ID.String()+"/restore", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("restore request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var restored models.Camper
	if err := db.First(&restored, "id = ?", camper.ID).Error; err != nil {
		t.Fatalf("restored camper not visible: %v", err)
	}
	if restored.DeletedAt.Valid {
		t.Error("expected deleted_at to be cleared")
	}
	if restored.DeletedBy != nil {
		t.Errorf("deleted_by = %v, want nil", restored.DeletedBy)
	}
}
