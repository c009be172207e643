package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/presenters"
	"preplabel-backend/pkg/midtrans"
	"preplabel-backend/pkg/team"
)

type (
	MidtransHandler interface {
		GetPlans(c *fiber.Ctx) error
		CreateTransaction(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
		GetSubscriptionStatus(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
		teamService     team.TeamService
		validator       *validator.Validate
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService, teamService team.TeamService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		midtransService: midtransService,
		teamService:     teamService,
		validator:       validator,
	}
}

func (h *midtransHandler) GetPlans(c *fiber.Ctx) error {
	plans, err := h.midtransService.GetPlans(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *midtransHandler) CreateTransaction(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateSubscriptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransaction, err)
	}

	me, err := h.teamService.GetMe(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransaction, err)
	}

	res, err := h.midtransService.CreateTransaction(c.Context(), *req, orgID, me.Email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransaction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTransaction)
}

func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}

func (h *midtransHandler) GetSubscriptionStatus(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	res, err := h.midtransService.GetSubscriptionStatus(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscription)
}
