package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"index" json:"organization_id"`
	RecipientID    *uuid.UUID `gorm:"index" json:"recipient_id,omitempty"` // nil means visible to the whole organization
	Title          string     `json:"title"`
	Body           string     `json:"body,omitempty"`
	Kind           string     `json:"kind"` // expiry, team, billing, printer, general
	IsRead         bool       `gorm:"default:false" json:"is_read"`

	Recipient *TeamMember `gorm:"foreignKey:RecipientID"`
	Timestamp
}
