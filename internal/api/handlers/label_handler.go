package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/presenters"
	"preplabel-backend/pkg/label"
	"preplabel-backend/pkg/team"
)

type (
	LabelHandler interface {
		QuickPrint(c *fiber.Ctx) error
		GetLabels(c *fiber.Ctx) error
		GetExpiringSoon(c *fiber.Ctx) error
		ConsumeLabel(c *fiber.Ctx) error
		DiscardLabel(c *fiber.Ctx) error
		ExtendLabel(c *fiber.Ctx) error
		BulkConsume(c *fiber.Ctx) error
		BulkDiscard(c *fiber.Ctx) error
		SaveDraft(c *fiber.Ctx) error
		GetDrafts(c *fiber.Ctx) error
		DeleteDraft(c *fiber.Ctx) error
	}

	labelHandler struct {
		labelService label.LabelService
		teamService  team.TeamService
		validator    *validator.Validate
	}
)

func NewLabelHandler(labelService label.LabelService, teamService team.TeamService, validator *validator.Validate) LabelHandler {
	return &labelHandler{
		labelService: labelService,
		teamService:  teamService,
		validator:    validator,
	}
}

func (h *labelHandler) QuickPrint(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)
	req := new(domain.QuickPrintRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPrintLabel, err)
	}

	me, err := h.teamService.GetMe(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPrintLabel, err)
	}

	res, err := h.labelService.QuickPrint(c.Context(), *req, orgID, userID, me.Name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPrintLabel, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPrintLabel)
}

func (h *labelHandler) GetLabels(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	status := c.Query("status", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	labels, count, err := h.labelService.GetLabels(c.Context(), orgID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLabels, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"labels": labels,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetLabels)
}

func (h *labelHandler) GetExpiringSoon(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	labels, err := h.labelService.GetExpiringSoon(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiringSoon, err)
	}

	return presenters.SuccessResponse(c, labels, fiber.StatusOK, domain.MessageSuccessGetExpiringSoon)
}

func (h *labelHandler) ConsumeLabel(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	labelID := c.Params("id")

	if err := h.labelService.Consume(c.Context(), labelID, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeLabel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConsumeLabel)
}

func (h *labelHandler) DiscardLabel(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	labelID := c.Params("id")
	req := new(domain.DiscardLabelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscardLabel, err)
	}

	if err := h.labelService.Discard(c.Context(), labelID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscardLabel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDiscardLabel)
}

func (h *labelHandler) ExtendLabel(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	labelID := c.Params("id")
	req := new(domain.ExtendLabelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtendLabel, err)
	}

	if err := h.labelService.Extend(c.Context(), labelID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExtendLabel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessExtendLabel)
}

func (h *labelHandler) BulkConsume(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.BulkLabelActionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAction, err)
	}

	res, err := h.labelService.BulkConsume(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBulkAction)
}

func (h *labelHandler) BulkDiscard(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.BulkLabelActionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAction, err)
	}

	res, err := h.labelService.BulkDiscard(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBulkAction)
}

func (h *labelHandler) SaveDraft(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveDraftRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveDraft, err)
	}

	res, err := h.labelService.SaveDraft(c.Context(), *req, orgID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveDraft, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveDraft)
}

func (h *labelHandler) GetDrafts(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)

	drafts, err := h.labelService.GetDrafts(c.Context(), orgID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDrafts, err)
	}

	return presenters.SuccessResponse(c, drafts, fiber.StatusOK, domain.MessageSuccessGetDrafts)
}

func (h *labelHandler) DeleteDraft(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)
	draftID := c.Params("id")

	if err := h.labelService.DeleteDraft(c.Context(), draftID, orgID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteDraft, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDraft)
}
