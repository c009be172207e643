package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID  uuid.UUID `gorm:"index" json:"organization_id"`
	CreatedByID     uuid.UUID `json:"created_by_id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	YieldQuantity   float64   `json:"yield_quantity"`
	YieldUnit       string    `json:"yield_unit,omitempty"`
	Ingredients     string    `gorm:"type:text" json:"ingredients"`
	Instructions    string    `gorm:"type:text" json:"instructions"`

	CreatedBy *TeamMember `gorm:"foreignKey:CreatedByID"`
	Timestamp
}
