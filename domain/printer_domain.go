package domain

import (
	"errors"
)

var (
	MessageSuccessCreatePrinter  = "printer registered successfully"
	MessageSuccessUpdatePrinter  = "printer updated successfully"
	MessageSuccessDeletePrinter  = "printer removed successfully"
	MessageSuccessGetPrinters    = "printers retrieved successfully"
	MessageSuccessDiscover       = "printer discovery completed"
	MessageSuccessTestPrint      = "test print dispatched successfully"

	MessageFailedCreatePrinter = "failed to register printer"
	MessageFailedUpdatePrinter = "failed to update printer"
	MessageFailedDeletePrinter = "failed to remove printer"
	MessageFailedGetPrinters   = "failed to retrieve printers"
	MessageFailedDiscover      = "failed to run printer discovery"
	MessageFailedTestPrint     = "failed to dispatch test print"

	ErrPrinterNotFound    = errors.New("printer not found")
	ErrPrinterUnreachable = errors.New("printer unreachable")
	ErrPrinterNoAddress   = errors.New("printer has no network address")
)

type (
	CreatePrinterRequest struct {
		Name           string `json:"name" validate:"required"`
		Model          string `json:"model" validate:"omitempty"`
		ConnectionType string `json:"connection_type" validate:"required,oneof=bluetooth wifi usb"`
		Address        string `json:"address" validate:"omitempty"`
		Port           int    `json:"port" validate:"omitempty,min=1,max=65535"`
	}

	UpdatePrinterRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Model          string `json:"model" validate:"omitempty"`
		ConnectionType string `json:"connection_type" validate:"omitempty,oneof=bluetooth wifi usb"`
		Address        string `json:"address" validate:"omitempty"`
		Port           int    `json:"port" validate:"omitempty,min=1,max=65535"`
	}

	PrinterResponse struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Model          string `json:"model,omitempty"`
		ConnectionType string `json:"connection_type"`
		Address        string `json:"address,omitempty"`
		Port           int    `json:"port,omitempty"`
		Status         string `json:"status"`
		LastSeenAt     string `json:"last_seen_at,omitempty"`
		LastLatencyMS  int64  `json:"last_latency_ms"`
	}

	DiscoverPrintersRequest struct {
		Hosts []string `json:"hosts" validate:"required,min=1"`
	}

	DiscoveredPrinter struct {
		Address   string `json:"address"`
		Port      int    `json:"port"`
		Service   string `json:"service"`
		LatencyMS int64  `json:"latency_ms"`
	}
)
