package entities

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Address  string    `json:"address,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	LogoURL  string    `json:"logo_url,omitempty"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Members []*TeamMember `gorm:"foreignKey:OrganizationID"`
	Timestamp
}

type TeamMember struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID `gorm:"index" json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash   string    `json:"-"`
	PinHash        string    `json:"-"`
	Role           string    `json:"role"` // owner, manager, staff
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsVerified     bool      `gorm:"default:false" json:"is_verified"`
	InvitedAt      *time.Time `json:"invited_at,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Timestamp
}
