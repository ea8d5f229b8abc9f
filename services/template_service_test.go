package services

import (
	"strings"
	"testing"

	"github.com/campbaraisa/camp_admin/models"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		body        string
		data        map[string]string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "basic substitution",
			subject:     "Hello {{camper_first_name}}",
			body:        "Dear {{parent_father_title}} {{parent_father_last_name}},",
			data:        map[string]string{"camper_first_name": "Avi", "parent_father_title": "Rabbi", "parent_father_last_name": "Cohen"},
			wantSubject: "Hello Avi",
			wantBody:    "Dear Rabbi Cohen,",
		},
		{
			name:        "empty context leaves tokens",
			subject:     "Hello {{camper_first_name}}",
			body:        "{{payment_link}}",
			data:        map[string]string{},
			wantSubject: "Hello {{camper_first_name}}",
			wantBody:    "{{payment_link}}",
		},
		{
			name:        "unknown tokens pass through",
			subject:     "{{no_such_field}}",
			body:        "Hi {{camper_first_name}} {{mystery}}",
			data:        map[string]string{"camper_first_name": "Avi"},
			wantSubject: "{{no_such_field}}",
			wantBody:    "Hi Avi {{mystery}}",
		},
		{
			name:        "repeated token replaced everywhere",
			subject:     "{{camp_name}}",
			body:        "{{camp_name}} welcomes you to {{camp_name}}",
			data:        map[string]string{"camp_name": "Camp Baraisa"},
			wantSubject: "Camp Baraisa",
			wantBody:    "Camp Baraisa welcomes you to Camp Baraisa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := RenderTemplate(tt.subject, tt.body, tt.data)
			if subject != tt.wantSubject {
				t.Errorf("subject = %q, want %q", subject, tt.wantSubject)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestTemplateMergeFieldsVocabulary(t *testing.T) {
	for _, group := range []string{"parent", "camper", "billing", "camp"} {
		fields, ok := TemplateMergeFields[group]
		if !ok {
			t.Fatalf("missing merge field group %q", group)
		}
		if len(fields) == 0 {
			t.Errorf("group %q has no fields", group)
		}
		for _, f := range fields {
			if !strings.HasPrefix(f.Field, "{{") || !strings.HasSuffix(f.Field, "}}") {
				t.Errorf("field %q is not wrapped in braces", f.Field)
			}
			if f.Label == "" {
				t.Errorf("field %q has no label", f.Field)
			}
		}
	}
}

func TestBuildCamperMergeData(t *testing.T) {
	db := newTestDB(t)

	if err := db.Create(&models.Settings{CampName: "Test Camp"}).Error; err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	email := "cohen@example.com"
	title := "Rabbi"
	lastName := "Cohen"
	camper := models.Camper{
		FirstName:      "Avi",
		LastName:       "Cohen",
		Status:         "Accepted",
		PortalToken:    "cohen-abc123",
		ParentEmail:    &email,
		FatherTitle:    &title,
		FatherLastName: &lastName,
		TotalBalance:   3475,
	}
	if err := db.Create(&camper).Error; err != nil {
		t.Fatalf("seed camper: %v", err)
	}
	invoice := models.Invoice{
		CamperID:    camper.ID,
		Amount:      3475,
		PaidAmount:  475,
		Description: "Camp Fee",
		Status:      "partial",
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	data := BuildCamperMergeData(db, &camper)

	checks := map[string]string{
		"camper_first_name":       "Avi",
		"camper_full_name":        "Avi Cohen",
		"camper_status":           "Accepted",
		"camp_name":               "Test Camp",
		"parent_father_title":     "Rabbi",
		"parent_father_last_name": "Cohen",
		"parent_email":            "cohen@example.com",
		"total_balance":           "$3,475.00",
		"amount_due":              "$3,000.00",
	}
	for key, want := range checks {
		if got := data[key]; got != want {
			t.Errorf("data[%q] = %q, want %q", key, got, want)
		}
	}

	if !strings.HasSuffix(data["payment_link"], "/portal/cohen-abc123") {
		t.Errorf("payment_link = %q, want portal token suffix", data["payment_link"])
	}
}
