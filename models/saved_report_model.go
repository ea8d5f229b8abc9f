package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedReport struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	Columns     string     `gorm:"type:text;not null;default:'[]'" json:"-"`
	Filters     string     `gorm:"type:text;default:'{}'" json:"-"`
	SortBy      *string    `gorm:"size:100" json:"sort_by"`
	SortOrder   string     `gorm:"size:4;default:'asc'" json:"sort_order"`
	CreatedBy   *uuid.UUID `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *SavedReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Columns == "" {
		r.Columns = "[]"
	}
	if r.Filters == "" {
		r.Filters = "{}"
	}
	return nil
}

func (r *SavedReport) ColumnList() []string {
	var cols []string
	if err := json.Unmarshal([]byte(r.Columns), &cols); err != nil {
		return []string{}
	}
	return cols
}

func (r *SavedReport) FilterMap() map[string]string {
	out := map[string]string{}
	if err := json.Unmarshal([]byte(r.Filters), &out); err != nil {
		return map[string]string{}
	}
	return out
}

func (r *SavedReport) MarshalJSON() ([]byte, error) {
	type alias SavedReport
	return json.Marshal(struct {
		alias
		Columns []string          `json:"columns"`
		Filters map[string]string `json:"filters"`
	}{alias(*r), r.ColumnList(), r.FilterMap()})
}
