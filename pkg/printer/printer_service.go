package printer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
	"preplabel-backend/pkg/label"
	"preplabel-backend/pkg/notification"
)

const dispatchTimeout = 10 * time.Second

type (
	PrinterService interface {
		label.Dispatcher

		CreatePrinter(ctx context.Context, req domain.CreatePrinterRequest, orgID string) (domain.PrinterResponse, error)
		UpdatePrinter(ctx context.Context, id string, req domain.UpdatePrinterRequest, orgID string) error
		DeletePrinter(ctx context.Context, id string, orgID string) error
		GetPrinters(ctx context.Context, orgID string) ([]domain.PrinterResponse, error)
		Discover(ctx context.Context, req domain.DiscoverPrintersRequest) ([]domain.DiscoveredPrinter, error)
		TestPrint(ctx context.Context, id string, orgID string, userName string) error
	}

	printerService struct {
		printerRepository   PrinterRepository
		notificationService notification.NotificationService
	}
)

func NewPrinterService(printerRepository PrinterRepository, notificationService notification.NotificationService) PrinterService {
	return &printerService{
		printerRepository:   printerRepository,
		notificationService: notificationService,
	}
}

// Dispatch renders the label and, when a target printer is given, pushes
// the payload over its transport. Either step failing fails the whole
// dispatch; the caller persists nothing in that case.
func (s *printerService) Dispatch(ctx context.Context, format label.Format, data label.LabelData, allergens []string, printerID *uuid.UUID) error {
	renderer, err := rendererFor(format)
	if err != nil {
		return err
	}

	payload, err := renderer.Render(data, allergens)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	if printerID == nil {
		// No device target: rendering succeeding is the whole dispatch
		// (preview/download flows).
		return nil
	}

	printer, err := s.printerRepository.GetPrinterByID(ctx, printerID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPrinterNotFound
		}
		return err
	}

	latency, err := s.send(ctx, printer, payload)
	if err != nil {
		_ = s.printerRepository.RecordProbe(ctx, printer.ID.String(), "offline", 0, time.Now())
		if printer.Status != "offline" {
			// feed write is best effort
			_ = s.notificationService.Notify(ctx, printer.OrganizationID.String(), nil,
				domain.NotificationKindPrinter, "Printer offline",
				fmt.Sprintf("%s did not respond to a dispatch.", printer.Name))
		}
		return fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	return s.printerRepository.RecordProbe(ctx, printer.ID.String(), "online", latency.Milliseconds(), time.Now())
}

func (s *printerService) send(ctx context.Context, printer *entities.Printer, payload []byte) (time.Duration, error) {
	if printer.Address == "" {
		return 0, domain.ErrPrinterNoAddress
	}

	port := printer.Port
	if port == 0 {
		port = 9100
	}

	dialer := &net.Dialer{Timeout: dispatchTimeout}
	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", fmt.Sprintf("%s:%d", printer.Address, port))
	if err != nil {
		return 0, domain.ErrPrinterUnreachable
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(dispatchTimeout))
	if _, err := conn.Write(payload); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}

func (s *printerService) CreatePrinter(ctx context.Context, req domain.CreatePrinterRequest, orgID string) (domain.PrinterResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.PrinterResponse{}, domain.ErrParseUUID
	}

	printer := &entities.Printer{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           req.Name,
		Model:          req.Model,
		ConnectionType: req.ConnectionType,
		Address:        req.Address,
		Port:           req.Port,
		Status:         "unknown",
	}

	if err := s.printerRepository.CreatePrinter(ctx, printer); err != nil {
		return domain.PrinterResponse{}, err
	}

	return toPrinterResponse(printer), nil
}

func (s *printerService) getOwnedPrinter(ctx context.Context, id string, orgID string) (*entities.Printer, error) {
	printer, err := s.printerRepository.GetPrinterByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrinterNotFound
		}
		return nil, err
	}
	if printer.OrganizationID.String() != orgID {
		return nil, domain.ErrUserNotAllowed
	}
	return printer, nil
}

func (s *printerService) UpdatePrinter(ctx context.Context, id string, req domain.UpdatePrinterRequest, orgID string) error {
	printer, err := s.getOwnedPrinter(ctx, id, orgID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		printer.Name = req.Name
	}
	if req.Model != "" {
		printer.Model = req.Model
	}
	if req.ConnectionType != "" {
		printer.ConnectionType = req.ConnectionType
	}
	if req.Address != "" {
		printer.Address = req.Address
	}
	if req.Port != 0 {
		printer.Port = req.Port
	}

	return s.printerRepository.UpdatePrinter(ctx, printer)
}

func (s *printerService) DeletePrinter(ctx context.Context, id string, orgID string) error {
	if _, err := s.getOwnedPrinter(ctx, id, orgID); err != nil {
		return err
	}
	return s.printerRepository.DeletePrinter(ctx, id)
}

func (s *printerService) GetPrinters(ctx context.Context, orgID string) ([]domain.PrinterResponse, error) {
	printers, err := s.printerRepository.GetPrinters(ctx, orgID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PrinterResponse, 0, len(printers))
	for _, printer := range printers {
		response = append(response, toPrinterResponse(printer))
	}
	return response, nil
}

func (s *printerService) Discover(ctx context.Context, req domain.DiscoverPrintersRequest) ([]domain.DiscoveredPrinter, error) {
	return discover(ctx, req.Hosts), nil
}

// TestPrint dispatches a fixed sample label to verify connectivity.
func (s *printerService) TestPrint(ctx context.Context, id string, orgID string, userName string) error {
	printer, err := s.getOwnedPrinter(ctx, id, orgID)
	if err != nil {
		return err
	}

	now := time.Now()
	sample := label.LabelData{
		ProductName:    "Test Label",
		Condition:      label.ConditionFresh,
		PrepDate:       now,
		ExpiryDate:     now.AddDate(0, 0, 1),
		PreparedByName: userName,
	}

	return s.Dispatch(ctx, label.FormatThermal, sample, nil, &printer.ID)
}

func toPrinterResponse(printer *entities.Printer) domain.PrinterResponse {
	response := domain.PrinterResponse{
		ID:             printer.ID.String(),
		Name:           printer.Name,
		Model:          printer.Model,
		ConnectionType: printer.ConnectionType,
		Address:        printer.Address,
		Port:           printer.Port,
		Status:         printer.Status,
		LastLatencyMS:  printer.LastLatencyMS,
	}
	if printer.LastSeenAt != nil {
		response.LastSeenAt = printer.LastSeenAt.Format(time.RFC3339)
	}
	return response
}
