package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/presenters"
	"preplabel-backend/pkg/task"
)

type (
	TaskHandler interface {
		CreateTask(c *fiber.Ctx) error
		UpdateTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
		GetTasks(c *fiber.Ctx) error
		CompleteTask(c *fiber.Ctx) error
	}

	taskHandler struct {
		taskService task.TaskService
		validator   *validator.Validate
	}
)

func NewTaskHandler(taskService task.TaskService, validator *validator.Validate) TaskHandler {
	return &taskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

func (h *taskHandler) CreateTask(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreateTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTask, err)
	}

	res, err := h.taskService.CreateTask(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTask)
}

func (h *taskHandler) UpdateTask(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	taskID := c.Params("id")
	req := new(domain.UpdateTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	if err := h.taskService.UpdateTask(c.Context(), taskID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateTask)
}

func (h *taskHandler) DeleteTask(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	taskID := c.Params("id")

	if err := h.taskService.DeleteTask(c.Context(), taskID, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}

func (h *taskHandler) GetTasks(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	tasks, err := h.taskService.GetTasks(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, tasks, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *taskHandler) CompleteTask(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)
	taskID := c.Params("id")
	req := new(domain.CompleteTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteTask, err)
	}

	if err := h.taskService.CompleteTask(c.Context(), taskID, *req, orgID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteTask)
}
