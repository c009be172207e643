package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/presenters"
	"preplabel-backend/pkg/team"
)

type (
	TeamHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		InviteMember(c *fiber.Ctx) error
		AcceptInvite(c *fiber.Ctx) error
		GetMembers(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateMember(c *fiber.Ctx) error
		RemoveMember(c *fiber.Ctx) error
		VerifyPin(c *fiber.Ctx) error
		SetPin(c *fiber.Ctx) error
		UploadAvatar(c *fiber.Ctx) error
	}

	teamHandler struct {
		teamService team.TeamService
		validator   *validator.Validate
	}
)

func NewTeamHandler(teamService team.TeamService, validator *validator.Validate) TeamHandler {
	return &teamHandler{
		teamService: teamService,
		validator:   validator,
	}
}

func (h *teamHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterOrganizationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.teamService.RegisterOrganization(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *teamHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.teamService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *teamHandler) InviteMember(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.InviteMemberRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInviteMember, err)
	}

	if err := h.teamService.InviteMember(c.Context(), *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInviteMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessInviteMember)
}

func (h *teamHandler) AcceptInvite(c *fiber.Ctx) error {
	req := new(domain.AcceptInviteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInviteMember, err)
	}

	res, err := h.teamService.AcceptInvite(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInviteMember, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *teamHandler) GetMembers(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	members, err := h.teamService.GetMembers(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMembers, err)
	}

	return presenters.SuccessResponse(c, members, fiber.StatusOK, domain.MessageSuccessGetMembers)
}

func (h *teamHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	me, err := h.teamService.GetMe(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMe, err)
	}

	return presenters.SuccessResponse(c, me, fiber.StatusOK, domain.MessageSuccessMe)
}

func (h *teamHandler) UpdateMember(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	memberID := c.Params("id")
	req := new(domain.UpdateMemberRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMember, err)
	}

	if err := h.teamService.UpdateMember(c.Context(), memberID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMember)
}

func (h *teamHandler) RemoveMember(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	memberID := c.Params("id")

	if err := h.teamService.RemoveMember(c.Context(), memberID, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMember, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMember)
}

func (h *teamHandler) VerifyPin(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.VerifyPinRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyPin, err)
	}

	res, err := h.teamService.VerifyPin(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedVerifyPin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyPin)
}

func (h *teamHandler) SetPin(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetPinRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPin, err)
	}

	if err := h.teamService.SetPin(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPin, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetPin)
}

func (h *teamHandler) UploadAvatar(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("avatar")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	url, err := h.teamService.UploadAvatar(c.Context(), file, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMember, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"avatar_url": url}, fiber.StatusOK, domain.MessageSuccessUpdateMember)
}
