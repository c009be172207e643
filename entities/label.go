package entities

import (
	"time"

	"github.com/google/uuid"
)

// PrintedLabel is the committed snapshot of a label once it has been
// dispatched to a renderer. Rows are never mutated except for the status
// and expiry columns driven by the lifecycle actions.
type PrintedLabel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"index" json:"organization_id"`
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	ProductName    string     `json:"product_name"`
	CategoryName   string     `json:"category_name,omitempty"`
	SubcategoryName string    `json:"subcategory_name,omitempty"`
	Condition      string     `json:"condition"` // fresh, cooked, frozen, dry, refrigerated
	PrepDate       time.Time  `json:"prep_date"`
	ExpiryDate     time.Time  `gorm:"index" json:"expiry_date"`
	Quantity       float64    `json:"quantity"`
	UnitName       string     `json:"unit_name,omitempty"`
	BatchNumber    string     `json:"batch_number,omitempty"`
	PreparedByID   uuid.UUID  `json:"prepared_by_id"`
	PreparedByName string     `json:"prepared_by_name"`
	AllergenNames  string     `json:"allergen_names,omitempty"` // comma separated snapshot
	Format         string     `json:"format"`                   // generic, pdf, thermal
	PrinterID      *uuid.UUID `json:"printer_id,omitempty"`
	Status         string     `gorm:"default:active;index" json:"status"` // active, used, wasted
	StatusReason   string     `json:"status_reason,omitempty"`
	StatusSetAt    *time.Time `json:"status_set_at,omitempty"`

	Printer *Printer `gorm:"foreignKey:PrinterID"`
	Timestamp
}

type LabelDraft struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"index" json:"organization_id"`
	UserID         uuid.UUID  `gorm:"index" json:"user_id"`
	Name           string     `gorm:"not null" json:"name"`
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	Condition      string     `json:"condition,omitempty"`
	PrepDate       *time.Time `json:"prep_date,omitempty"`
	Quantity       float64    `json:"quantity"`
	UnitName       string     `json:"unit_name,omitempty"`
	BatchNumber    string     `json:"batch_number,omitempty"`

	User *TeamMember `gorm:"foreignKey:UserID"`
	Timestamp
}
