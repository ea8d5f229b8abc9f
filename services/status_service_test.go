package services

import (
	"errors"
	"testing"

	"github.com/campbaraisa/camp_admin/models"
	"gorm.io/gorm"
)

func seedCamper(t *testing.T, db *gorm.DB) *models.Camper {
	t.Helper()
	email := "parent@example.com"
	camper := models.Camper{
		FirstName:   "Avi",
		LastName:    "Cohen",
		Status:      "Applied",
		PortalToken: "cohen-xyz",
		ParentEmail: &email,
	}
	if err := db.Create(&camper).Error; err != nil {
		t.Fatalf("seed camper: %v", err)
	}
	return &camper
}

func seedAcceptanceTemplate(t *testing.T, db *gorm.DB) *models.EmailTemplate {
	t.Helper()
	trigger := "status_accepted"
	template := models.EmailTemplate{
		Name:         "Acceptance Letter",
		Subject:      "Welcome {{camper_first_name}}!",
		Body:         "Dear parents, {{camper_first_name}} is in.",
		Trigger:      &trigger,
		TemplateType: "email",
		IsActive:     true,
	}
	if err := db.Create(&template).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return &template
}

func TestApplyStatusChangeWithTrigger(t *testing.T) {
	db := newTestDB(t)
	camper := seedCamper(t, db)
	seedAcceptanceTemplate(t, db)

	result, err := ApplyStatusChange(db, camper, "Accepted", false, nil)
	if err != nil {
		t.Fatalf("ApplyStatusChange() error = %v", err)
	}
	if !result.Notified {
		t.Fatal("expected notification to be queued")
	}
	if result.Subject != "Welcome Avi!" {
		t.Errorf("subject = %q, want rendered subject", result.Subject)
	}
	if camper.Status != "Accepted" {
		t.Errorf("camper status = %q, want Accepted", camper.Status)
	}

	var comms []models.Communication
	db.Where("camper_id = ?", camper.ID).Find(&comms)
	if len(comms) != 1 {
		t.Fatalf("got %d communications, want 1", len(comms))
	}
	if comms[0].Status != "pending" || comms[0].Direction != "outbound" {
		t.Errorf("communication = %s/%s, want pending/outbound", comms[0].Status, comms[0].Direction)
	}
	if comms[0].RecipientEmail == nil || *comms[0].RecipientEmail != "parent@example.com" {
		t.Error("communication missing recipient email")
	}

	var actions []string
	db.Model(&models.ActivityLog{}).
		Where("entity_id = ?", camper.ID).
		Order("created_at asc").
		Pluck("action", &actions)
	if len(actions) != 2 || actions[0] != "status_changed" || actions[1] != "email_queued" {
		t.Errorf("activity actions = %v, want [status_changed email_queued]", actions)
	}
}

func TestApplyStatusChangeSkipNotification(t *testing.T) {
	db := newTestDB(t)
	camper := seedCamper(t, db)
	seedAcceptanceTemplate(t, db)

	result, err := ApplyStatusChange(db, camper, "Accepted", true, nil)
	if err != nil {
		t.Fatalf("ApplyStatusChange() error = %v", err)
	}
	if result.Notified {
		t.Error("skip flag set, but notification was queued")
	}

	var commCount int64
	db.Model(&models.Communication{}).Where("camper_id = ?", camper.ID).Count(&commCount)
	if commCount != 0 {
		t.Errorf("got %d communications, want 0", commCount)
	}

	var logCount int64
	db.Model(&models.ActivityLog{}).
		Where("entity_id = ? AND action = ?", camper.ID, "status_changed").
		Count(&logCount)
	if logCount != 1 {
		t.Errorf("got %d status_changed entries, want 1", logCount)
	}
}

func TestApplyStatusChangeNoTriggerBound(t *testing.T) {
	db := newTestDB(t)
	camper := seedCamper(t, db)

	result, err := ApplyStatusChange(db, camper, "Sending Check", false, nil)
	if err != nil {
		t.Fatalf("ApplyStatusChange() error = %v", err)
	}
	if result.Notified {
		t.Error("stage has no trigger, but notification was queued")
	}
}

func TestApplyStatusChangeSameStatus(t *testing.T) {
	db := newTestDB(t)
	camper := seedCamper(t, db)
	seedAcceptanceTemplate(t, db)

	if _, err := ApplyStatusChange(db, camper, "Accepted", true, nil); err != nil {
		t.Fatalf("first change: %v", err)
	}
	result, err := ApplyStatusChange(db, camper, "Accepted", false, nil)
	if err != nil {
		t.Fatalf("second change: %v", err)
	}
	if result.Notified {
		t.Error("same-status move queued a notification")
	}
}

func TestApplyStatusChangeInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	camper := seedCamper(t, db)

	_, err := ApplyStatusChange(db, camper, "Enrolled", false, nil)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("error = %v, want ErrInvalidStatus", err)
	}
	if camper.Status != "Applied" {
		t.Errorf("camper status = %q, want unchanged Applied", camper.Status)
	}
}

func TestPreviewStatusEmailPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	camper := seedCamper(t, db)
	seedAcceptanceTemplate(t, db)

	preview, err := PreviewStatusEmail(db, camper, "Accepted")
	if err != nil {
		t.Fatalf("PreviewStatusEmail() error = %v", err)
	}
	if !preview.HasTemplate {
		t.Fatal("expected a bound template")
	}
	if preview.Subject != "Welcome Avi!" {
		t.Errorf("subject = %q, want rendered subject", preview.Subject)
	}

	var fresh models.Camper
	db.First(&fresh, "id = ?", camper.ID)
	if fresh.Status != "Applied" {
		t.Errorf("camper status = %q, preview must not change it", fresh.Status)
	}

	var commCount, logCount int64
	db.Model(&models.Communication{}).Count(&commCount)
	db.Model(&models.ActivityLog{}).Count(&logCount)
	if commCount != 0 || logCount != 0 {
		t.Errorf("preview persisted comms=%d logs=%d, want none", commCount, logCount)
	}
}

func TestKanbanStatusOrder(t *testing.T) {
	want := []string{
		"Applied",
		"Accepted",
		"Check/Unknown",
		"Invoice Sent",
		"Payment Plan - Request",
		"Payment Plan Running",
		"Sending Check",
		"Partial Paid",
		"Partial Paid & Committed",
		"Paid in Full",
	}
	if len(KanbanStatuses) != len(want) {
		t.Fatalf("got %d statuses, want %d", len(KanbanStatuses), len(want))
	}
	for i, status := range want {
		if KanbanStatuses[i] != status {
			t.Errorf("statuses[%d] = %q, want %q", i, KanbanStatuses[i], status)
		}
	}
}
