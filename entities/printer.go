package entities

import (
	"time"

	"github.com/google/uuid"
)

type Printer struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"index" json:"organization_id"`
	Name           string     `gorm:"not null" json:"name"`
	Model          string     `json:"model,omitempty"`
	ConnectionType string     `json:"connection_type"` // bluetooth, wifi, usb
	Address        string     `json:"address"`
	Port           int        `json:"port"`
	Status         string     `gorm:"default:unknown" json:"status"` // online, offline, unknown
	LastSeenAt     *time.Time `json:"last_seen_at,omitempty"`
	LastLatencyMS  int64      `json:"last_latency_ms"`

	Timestamp
}
