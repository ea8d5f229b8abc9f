package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Camper carries the embedded parent/family and billing snapshot fields.
// There is no separate Parent entity; the family record lives on the camper.
type Camper struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth *string   `gorm:"size:20" json:"date_of_birth"`

	Address      *string `gorm:"size:255" json:"address"`
	AddressLine2 *string `gorm:"size:255" json:"address_line2"`
	City         *string `gorm:"size:100" json:"city"`
	State        *string `gorm:"size:50" json:"state"`
	ZipCode      *string `gorm:"size:20" json:"zip_code"`

	Yeshiva         *string `gorm:"size:255" json:"yeshiva"`
	YeshivaOther    *string `gorm:"size:255" json:"yeshiva_other"`
	Grade           *string `gorm:"size:50" json:"grade"`
	Menahel         *string `gorm:"size:255" json:"menahel"`
	RebbeName       *string `gorm:"size:255" json:"rebbe_name"`
	RebbePhone      *string `gorm:"size:50" json:"rebbe_phone"`
	PreviousYeshiva *string `gorm:"size:255" json:"previous_yeshiva"`

	Camp2024 *string `gorm:"size:255" json:"camp_2024"`
	Camp2023 *string `gorm:"size:255" json:"camp_2023"`

	PhotoURL *string `gorm:"size:512" json:"photo_url"`

	Allergies             *string `gorm:"type:text" json:"allergies"`
	MedicalInfo           *string `gorm:"type:text" json:"medical_info"`
	DietaryRestrictions   *string `gorm:"type:text" json:"dietary_restrictions"`
	Medications           *string `gorm:"type:text" json:"medications"`
	DoctorName            *string `gorm:"size:255" json:"doctor_name"`
	DoctorPhone           *string `gorm:"size:50" json:"doctor_phone"`
	InsuranceCompany      *string `gorm:"size:255" json:"insurance_company"`
	InsurancePolicyNumber *string `gorm:"size:100" json:"insurance_policy_number"`

	EmergencyContactName         *string `gorm:"size:255" json:"emergency_contact_name"`
	EmergencyContactPhone        *string `gorm:"size:50" json:"emergency_contact_phone"`
	EmergencyContactRelationship *string `gorm:"size:100" json:"emergency_contact_relationship"`

	RulesAgreed     bool    `gorm:"default:false" json:"rules_agreed"`
	RulesSignature  *string `gorm:"size:255" json:"rules_signature"`
	WaiverAgreed    bool    `gorm:"default:false" json:"waiver_agreed"`
	WaiverSignature *string `gorm:"size:255" json:"waiver_signature"`

	DueDate *string `gorm:"size:20" json:"due_date"`
	Notes   *string `gorm:"type:text" json:"notes"`

	ParentEmail      *string `gorm:"size:255" json:"parent_email"`
	FatherTitle      *string `gorm:"size:50" json:"father_title"`
	FatherFirstName  *string `gorm:"size:100" json:"father_first_name"`
	FatherLastName   *string `gorm:"size:100" json:"father_last_name"`
	FatherCell       *string `gorm:"size:50" json:"father_cell"`
	FatherWorkPhone  *string `gorm:"size:50" json:"father_work_phone"`
	FatherOccupation *string `gorm:"size:255" json:"father_occupation"`
	MotherTitle      *string `gorm:"size:50" json:"mother_title"`
	MotherFirstName  *string `gorm:"size:100" json:"mother_first_name"`
	MotherLastName   *string `gorm:"size:100" json:"mother_last_name"`
	MotherCell       *string `gorm:"size:50" json:"mother_cell"`
	MotherWorkPhone  *string `gorm:"size:50" json:"mother_work_phone"`
	MotherOccupation *string `gorm:"size:255" json:"mother_occupation"`
	HomePhone        *string `gorm:"size:50" json:"home_phone"`

	TotalBalance       float64 `gorm:"type:numeric(10,2);default:0.00" json:"total_balance"`
	TotalPaid          float64 `gorm:"type:numeric(10,2);default:0.00" json:"total_paid"`
	PaymentPlan        *string `gorm:"size:50" json:"payment_plan"`
	PaymentPlanDetails *string `gorm:"type:text" json:"payment_plan_details"`

	Status      string     `gorm:"size:50;not null;default:'Applied'" json:"status"`
	PortalToken string     `gorm:"size:100;unique;not null" json:"portal_token"`
	RoomID      *uuid.UUID `json:"room_id"`

	Room   *Room    `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	Groups []*Group `gorm:"many2many:camper_groups;" json:"groups,omitempty"`

	DeletedBy *uuid.UUID     `json:"deleted_by,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (c *Camper) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Camper) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ParentName prefers the father's name and falls back to the mother's.
func (c *Camper) ParentName() string {
	if c.FatherFirstName != nil || c.FatherLastName != nil {
		return deref(c.FatherFirstName) + " " + deref(c.FatherLastName)
	}
	return deref(c.MotherFirstName) + " " + deref(c.MotherLastName)
}

func (c *Camper) ParentPhone() string {
	if c.FatherCell != nil && *c.FatherCell != "" {
		return *c.FatherCell
	}
	return deref(c.MotherCell)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
