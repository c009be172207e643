package entities

import (
	"time"

	"github.com/google/uuid"
)

type RoutineTask struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"index" json:"organization_id"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `json:"description,omitempty"`
	Frequency      string     `json:"frequency"` // daily, weekly, monthly
	AssignedToID   *uuid.UUID `json:"assigned_to_id,omitempty"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`

	AssignedTo  *TeamMember       `gorm:"foreignKey:AssignedToID"`
	Completions []*TaskCompletion `gorm:"foreignKey:TaskID"`
	Timestamp
}

type TaskCompletion struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TaskID        uuid.UUID `gorm:"index" json:"task_id"`
	CompletedByID uuid.UUID `json:"completed_by_id"`
	CompletedAt   time.Time `json:"completed_at"`
	Note          string    `json:"note,omitempty"`

	Task        *RoutineTask `gorm:"foreignKey:TaskID"`
	CompletedBy *TeamMember  `gorm:"foreignKey:CompletedByID"`
	Timestamp
}
