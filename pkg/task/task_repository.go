package task

import (
	"context"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

type (
	TaskRepository interface {
		CreateTask(ctx context.Context, task *entities.RoutineTask) error
		GetTaskByID(ctx context.Context, id string) (*entities.RoutineTask, error)
		UpdateTask(ctx context.Context, task *entities.RoutineTask) error
		DeleteTask(ctx context.Context, id string) error
		GetTasks(ctx context.Context, orgID string) ([]*entities.RoutineTask, error)
		CreateCompletion(ctx context.Context, completion *entities.TaskCompletion) error
		GetLastCompletion(ctx context.Context, taskID string) (*entities.TaskCompletion, error)
	}

	taskRepository struct {
		db *gorm.DB
	}
)

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, task *entities.RoutineTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetTaskByID(ctx context.Context, id string) (*entities.RoutineTask, error) {
	var task entities.RoutineTask
	if err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, task *entities.RoutineTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) DeleteTask(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RoutineTask{}).Error
}

func (r *taskRepository) GetTasks(ctx context.Context, orgID string) ([]*entities.RoutineTask, error) {
	var tasks []*entities.RoutineTask
	if err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Where("organization_id = ?", orgID).
		Order("title asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CreateCompletion(ctx context.Context, completion *entities.TaskCompletion) error {
	return r.db.WithContext(ctx).Create(completion).Error
}

func (r *taskRepository) GetLastCompletion(ctx context.Context, taskID string) (*entities.TaskCompletion, error) {
	var completion entities.TaskCompletion
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("completed_at desc").
		First(&completion).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}
