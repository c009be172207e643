package entities

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Price          int64     `json:"price"`
	Currency       string    `json:"currency"`
	IntervalMonths int       `json:"interval_months"`
	MaxTeamMembers int       `json:"max_team_members"`
	MaxPrinters    int       `json:"max_printers"`
	Description    string    `json:"description,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type SubscriptionTransaction struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"index" json:"organization_id"`
	PlanID         uuid.UUID  `json:"plan_id"`
	OrderID        string     `gorm:"uniqueIndex" json:"order_id"`
	GrossAmount    int64      `json:"gross_amount"`
	Status         string     `json:"status"` // pending, settled, expired, cancelled
	SnapToken      string     `json:"snap_token,omitempty"`
	RedirectURL    string     `json:"redirect_url,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`

	Plan *SubscriptionPlan `gorm:"foreignKey:PlanID"`
	Timestamp
}
