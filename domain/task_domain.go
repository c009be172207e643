package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateTask   = "routine task created successfully"
	MessageSuccessUpdateTask   = "routine task updated successfully"
	MessageSuccessDeleteTask   = "routine task deleted successfully"
	MessageSuccessGetTasks     = "routine tasks retrieved successfully"
	MessageSuccessCompleteTask = "routine task completed successfully"

	MessageFailedCreateTask   = "failed to create routine task"
	MessageFailedUpdateTask   = "failed to update routine task"
	MessageFailedDeleteTask   = "failed to delete routine task"
	MessageFailedGetTasks     = "failed to retrieve routine tasks"
	MessageFailedCompleteTask = "failed to complete routine task"

	ErrTaskNotFound = errors.New("routine task not found")
	ErrTaskInactive = errors.New("routine task is inactive")
)

type (
	CreateTaskRequest struct {
		Title        string `json:"title" validate:"required"`
		Description  string `json:"description" validate:"omitempty"`
		Frequency    string `json:"frequency" validate:"required,oneof=daily weekly monthly"`
		AssignedToID string `json:"assigned_to_id" validate:"omitempty,uuid"`
	}

	UpdateTaskRequest struct {
		Title        string `json:"title" validate:"omitempty"`
		Description  string `json:"description" validate:"omitempty"`
		Frequency    string `json:"frequency" validate:"omitempty,oneof=daily weekly monthly"`
		AssignedToID string `json:"assigned_to_id" validate:"omitempty,uuid"`
		IsActive     *bool  `json:"is_active" validate:"omitempty"`
	}

	CompleteTaskRequest struct {
		Note string `json:"note" validate:"omitempty"`
	}

	TaskResponse struct {
		ID              string     `json:"id"`
		Title           string     `json:"title"`
		Description     string     `json:"description,omitempty"`
		Frequency       string     `json:"frequency"`
		AssignedToID    string     `json:"assigned_to_id,omitempty"`
		AssignedToName  string     `json:"assigned_to_name,omitempty"`
		IsActive        bool       `json:"is_active"`
		LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	}
)
