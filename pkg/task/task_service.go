package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
)

type (
	TaskService interface {
		CreateTask(ctx context.Context, req domain.CreateTaskRequest, orgID string) (domain.TaskResponse, error)
		UpdateTask(ctx context.Context, id string, req domain.UpdateTaskRequest, orgID string) error
		DeleteTask(ctx context.Context, id string, orgID string) error
		GetTasks(ctx context.Context, orgID string) ([]domain.TaskResponse, error)
		CompleteTask(ctx context.Context, id string, req domain.CompleteTaskRequest, orgID string, userID string) error
	}

	taskService struct {
		taskRepository TaskRepository
	}
)

func NewTaskService(taskRepository TaskRepository) TaskService {
	return &taskService{taskRepository: taskRepository}
}

func (s *taskService) CreateTask(ctx context.Context, req domain.CreateTaskRequest, orgID string) (domain.TaskResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.TaskResponse{}, domain.ErrParseUUID
	}

	task := &entities.RoutineTask{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Title:          req.Title,
		Description:    req.Description,
		Frequency:      req.Frequency,
		IsActive:       true,
	}

	if req.AssignedToID != "" {
		assignedUUID, err := uuid.Parse(req.AssignedToID)
		if err != nil {
			return domain.TaskResponse{}, domain.ErrParseUUID
		}
		task.AssignedToID = &assignedUUID
	}

	if err := s.taskRepository.CreateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}

	return s.toTaskResponse(ctx, task), nil
}

func (s *taskService) getOwnedTask(ctx context.Context, id string, orgID string) (*entities.RoutineTask, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if task.OrganizationID.String() != orgID {
		return nil, domain.ErrUserNotAllowed
	}
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req domain.UpdateTaskRequest, orgID string) error {
	task, err := s.getOwnedTask(ctx, id, orgID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Frequency != "" {
		task.Frequency = req.Frequency
	}
	if req.AssignedToID != "" {
		assignedUUID, err := uuid.Parse(req.AssignedToID)
		if err != nil {
			return domain.ErrParseUUID
		}
		task.AssignedToID = &assignedUUID
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}

	return s.taskRepository.UpdateTask(ctx, task)
}

func (s *taskService) DeleteTask(ctx context.Context, id string, orgID string) error {
	if _, err := s.getOwnedTask(ctx, id, orgID); err != nil {
		return err
	}
	return s.taskRepository.DeleteTask(ctx, id)
}

func (s *taskService) GetTasks(ctx context.Context, orgID string) ([]domain.TaskResponse, error) {
	tasks, err := s.taskRepository.GetTasks(ctx, orgID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, s.toTaskResponse(ctx, task))
	}
	return response, nil
}

func (s *taskService) CompleteTask(ctx context.Context, id string, req domain.CompleteTaskRequest, orgID string, userID string) error {
	task, err := s.getOwnedTask(ctx, id, orgID)
	if err != nil {
		return err
	}
	if !task.IsActive {
		return domain.ErrTaskInactive
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	completion := &entities.TaskCompletion{
		ID:            uuid.New(),
		TaskID:        task.ID,
		CompletedByID: userUUID,
		CompletedAt:   time.Now(),
		Note:          req.Note,
	}

	return s.taskRepository.CreateCompletion(ctx, completion)
}

func (s *taskService) toTaskResponse(ctx context.Context, task *entities.RoutineTask) domain.TaskResponse {
	response := domain.TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Frequency:   task.Frequency,
		IsActive:    task.IsActive,
	}
	if task.AssignedToID != nil {
		response.AssignedToID = task.AssignedToID.String()
	}
	if task.AssignedTo != nil {
		response.AssignedToName = task.AssignedTo.Name
	}
	if last, err := s.taskRepository.GetLastCompletion(ctx, task.ID.String()); err == nil {
		response.LastCompletedAt = &last.CompletedAt
	}
	return response
}
