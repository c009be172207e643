package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/presenters"
	"preplabel-backend/pkg/printer"
	"preplabel-backend/pkg/team"
)

type (
	PrinterHandler interface {
		CreatePrinter(c *fiber.Ctx) error
		UpdatePrinter(c *fiber.Ctx) error
		DeletePrinter(c *fiber.Ctx) error
		GetPrinters(c *fiber.Ctx) error
		DiscoverPrinters(c *fiber.Ctx) error
		TestPrint(c *fiber.Ctx) error
	}

	printerHandler struct {
		printerService printer.PrinterService
		teamService    team.TeamService
		validator      *validator.Validate
	}
)

func NewPrinterHandler(printerService printer.PrinterService, teamService team.TeamService, validator *validator.Validate) PrinterHandler {
	return &printerHandler{
		printerService: printerService,
		teamService:    teamService,
		validator:      validator,
	}
}

func (h *printerHandler) CreatePrinter(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreatePrinterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePrinter, err)
	}

	res, err := h.printerService.CreatePrinter(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePrinter, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePrinter)
}

func (h *printerHandler) UpdatePrinter(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	printerID := c.Params("id")
	req := new(domain.UpdatePrinterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePrinter, err)
	}

	if err := h.printerService.UpdatePrinter(c.Context(), printerID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePrinter, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePrinter)
}

func (h *printerHandler) DeletePrinter(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	printerID := c.Params("id")

	if err := h.printerService.DeletePrinter(c.Context(), printerID, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePrinter, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePrinter)
}

func (h *printerHandler) GetPrinters(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	printers, err := h.printerService.GetPrinters(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPrinters, err)
	}

	return presenters.SuccessResponse(c, printers, fiber.StatusOK, domain.MessageSuccessGetPrinters)
}

func (h *printerHandler) DiscoverPrinters(c *fiber.Ctx) error {
	req := new(domain.DiscoverPrintersRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscover, err)
	}

	found, err := h.printerService.Discover(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscover, err)
	}

	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessDiscover)
}

func (h *printerHandler) TestPrint(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	userID := c.Locals("user_id").(string)
	printerID := c.Params("id")

	me, err := h.teamService.GetMe(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTestPrint, err)
	}

	if err := h.printerService.TestPrint(c.Context(), printerID, orgID, me.Name); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTestPrint, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessTestPrint)
}
