package label

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
	"preplabel-backend/pkg/catalog"
)

// Format selects the output encoding a label is rendered into.
type Format string

const (
	FormatGeneric Format = "generic"
	FormatPDF     Format = "pdf"
	FormatThermal Format = "thermal"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatGeneric, FormatPDF, FormatThermal:
		return Format(s), nil
	default:
		return "", domain.ErrUnknownLabelFormat
	}
}

// Dispatcher renders an assembled label and pushes it to its destination.
// Implemented by the printer package; failure means no PrintedLabel record
// is written.
type Dispatcher interface {
	Dispatch(ctx context.Context, format Format, data LabelData, allergens []string, printerID *uuid.UUID) error
}

type (
	LabelService interface {
		QuickPrint(ctx context.Context, req domain.QuickPrintRequest, orgID, userID, userName string) (domain.PrintedLabelResponse, error)
		GetLabels(ctx context.Context, orgID string, status string, page, limit int) ([]domain.PrintedLabelResponse, int64, error)
		GetExpiringSoon(ctx context.Context, orgID string) ([]domain.PrintedLabelResponse, error)
		Consume(ctx context.Context, labelID string, orgID string) error
		Discard(ctx context.Context, labelID string, req domain.DiscardLabelRequest, orgID string) error
		Extend(ctx context.Context, labelID string, req domain.ExtendLabelRequest, orgID string) error
		BulkConsume(ctx context.Context, req domain.BulkLabelActionRequest, orgID string) (domain.BulkLabelActionResponse, error)
		BulkDiscard(ctx context.Context, req domain.BulkLabelActionRequest, orgID string) (domain.BulkLabelActionResponse, error)

		SaveDraft(ctx context.Context, req domain.SaveDraftRequest, orgID, userID string) (domain.DraftResponse, error)
		GetDrafts(ctx context.Context, orgID, userID string) ([]domain.DraftResponse, error)
		DeleteDraft(ctx context.Context, draftID string, orgID, userID string) error
	}

	labelService struct {
		labelRepository   LabelRepository
		catalogRepository catalog.CatalogRepository
		dispatcher        Dispatcher
	}
)

func NewLabelService(labelRepository LabelRepository, catalogRepository catalog.CatalogRepository, dispatcher Dispatcher) LabelService {
	return &labelService{
		labelRepository:   labelRepository,
		catalogRepository: catalogRepository,
		dispatcher:        dispatcher,
	}
}

func (s *labelService) QuickPrint(ctx context.Context, req domain.QuickPrintRequest, orgID, userID, userName string) (domain.PrintedLabelResponse, error) {
	prepDate, err := time.Parse("2006-01-02", req.PrepDate)
	if err != nil {
		return domain.PrintedLabelResponse{}, domain.ErrInvalidPrepDate
	}

	format, err := ParseFormat(req.Format)
	if err != nil {
		return domain.PrintedLabelResponse{}, err
	}

	product, err := s.catalogRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PrintedLabelResponse{}, domain.ErrProductNotFound
		}
		return domain.PrintedLabelResponse{}, err
	}
	if product.OrganizationID.String() != orgID {
		return domain.PrintedLabelResponse{}, domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PrintedLabelResponse{}, domain.ErrParseUUID
	}

	assembler := NewAssembler()
	assembler.SelectProduct(toProductInfo(product))
	if req.Condition != "" {
		assembler.SetCondition(Condition(req.Condition))
	}
	assembler.SetPrepDate(prepDate)
	assembler.SetQuantity(req.Quantity, req.UnitName)
	assembler.SetBatchNumber(req.BatchNumber)
	assembler.SetPreparer(userUUID, userName)

	data, err := assembler.Build()
	if err != nil {
		return domain.PrintedLabelResponse{}, err
	}

	// Allergens are fetched fresh at dispatch time so the printed record
	// reflects the latest assignment, not a stale in-memory copy.
	allergens, err := s.catalogRepository.GetProductAllergens(ctx, req.ProductID)
	if err != nil {
		return domain.PrintedLabelResponse{}, err
	}
	allergenNames := make([]string, 0, len(allergens))
	for _, allergen := range allergens {
		allergenNames = append(allergenNames, allergen.Name)
	}

	var printerID *uuid.UUID
	if req.PrinterID != "" {
		printerUUID, err := uuid.Parse(req.PrinterID)
		if err != nil {
			return domain.PrintedLabelResponse{}, domain.ErrParseUUID
		}
		printerID = &printerUUID
	}

	// Dispatch is all-or-nothing: a renderer or transport failure leaves
	// no printed-label record behind.
	if err := s.dispatcher.Dispatch(ctx, format, data, allergenNames, printerID); err != nil {
		return domain.PrintedLabelResponse{}, err
	}

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.PrintedLabelResponse{}, domain.ErrParseUUID
	}

	printedLabel := &entities.PrintedLabel{
		ID:              uuid.New(),
		OrganizationID:  orgUUID,
		ProductID:       &product.ID,
		ProductName:     data.ProductName,
		CategoryName:    data.CategoryName,
		SubcategoryName: data.SubcategoryName,
		Condition:       string(data.Condition),
		PrepDate:        data.PrepDate,
		ExpiryDate:      data.ExpiryDate,
		Quantity:        data.Quantity,
		UnitName:        data.UnitName,
		BatchNumber:     data.BatchNumber,
		PreparedByID:    data.PreparedByID,
		PreparedByName:  data.PreparedByName,
		AllergenNames:   strings.Join(allergenNames, ", "),
		Format:          string(format),
		PrinterID:       printerID,
		Status:          string(StatusActive),
	}

	if err := s.labelRepository.CreatePrintedLabel(ctx, printedLabel); err != nil {
		return domain.PrintedLabelResponse{}, err
	}

	return toLabelResponse(printedLabel, time.Now()), nil
}

func (s *labelService) GetLabels(ctx context.Context, orgID string, status string, page, limit int) ([]domain.PrintedLabelResponse, int64, error) {
	// near_expiry and expired are derived statuses; they are stored as
	// active and filtered after the effective status is computed.
	storedStatus := status
	derived := status == string(StatusNearExpiry) || status == string(StatusExpired)
	if derived {
		storedStatus = string(StatusActive)
	}

	printedLabels, count, err := s.labelRepository.GetPrintedLabels(ctx, orgID, storedStatus, page, limit)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	response := make([]domain.PrintedLabelResponse, 0, len(printedLabels))
	for _, printedLabel := range printedLabels {
		item := toLabelResponse(printedLabel, now)
		if derived && item.Status != status {
			continue
		}
		response = append(response, item)
	}
	if derived {
		count = int64(len(response))
	}

	return response, count, nil
}

func (s *labelService) GetExpiringSoon(ctx context.Context, orgID string) ([]domain.PrintedLabelResponse, error) {
	now := time.Now()
	deadline := now.AddDate(0, 0, lookAheadDays)

	printedLabels, err := s.labelRepository.GetLabelsExpiringBy(ctx, orgID, deadline)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PrintedLabelResponse, 0, len(printedLabels))
	for _, printedLabel := range printedLabels {
		tier, ok := ClassifyLabel(Status(printedLabel.Status), printedLabel.ExpiryDate, now)
		if !ok {
			continue
		}
		item := toLabelResponse(printedLabel, now)
		item.Tier = string(tier)
		response = append(response, item)
	}

	return response, nil
}

func (s *labelService) getOwnedLabel(ctx context.Context, labelID string, orgID string) (*entities.PrintedLabel, error) {
	printedLabel, err := s.labelRepository.GetPrintedLabelByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLabelNotFound
		}
		return nil, err
	}
	if printedLabel.OrganizationID.String() != orgID {
		return nil, domain.ErrUserNotAllowed
	}
	return printedLabel, nil
}

func (s *labelService) Consume(ctx context.Context, labelID string, orgID string) error {
	printedLabel, err := s.getOwnedLabel(ctx, labelID, orgID)
	if err != nil {
		return err
	}

	next, err := Consume(Status(printedLabel.Status))
	if err != nil {
		return err
	}

	return s.labelRepository.UpdateLabelStatus(ctx, labelID, string(next), "", time.Now())
}

func (s *labelService) Discard(ctx context.Context, labelID string, req domain.DiscardLabelRequest, orgID string) error {
	printedLabel, err := s.getOwnedLabel(ctx, labelID, orgID)
	if err != nil {
		return err
	}

	next, err := Discard(Status(printedLabel.Status), req.Reason)
	if err != nil {
		return err
	}

	return s.labelRepository.UpdateLabelStatus(ctx, labelID, string(next), req.Reason, time.Now())
}

func (s *labelService) Extend(ctx context.Context, labelID string, req domain.ExtendLabelRequest, orgID string) error {
	printedLabel, err := s.getOwnedLabel(ctx, labelID, orgID)
	if err != nil {
		return err
	}

	newExpiry, err := time.Parse("2006-01-02", req.NewExpiryDate)
	if err != nil {
		return domain.ErrInvalidExpiryDate
	}

	if err := Extend(Status(printedLabel.Status), newExpiry, time.Now(), req.Reason); err != nil {
		return err
	}

	return s.labelRepository.UpdateLabelExpiry(ctx, labelID, newExpiry, req.Reason)
}

// BulkConsume applies consume to each label independently. Successes stay
// applied; failures are collected into one aggregate report.
func (s *labelService) BulkConsume(ctx context.Context, req domain.BulkLabelActionRequest, orgID string) (domain.BulkLabelActionResponse, error) {
	return s.bulkApply(req.LabelIDs, func(id string) error {
		return s.Consume(ctx, id, orgID)
	})
}

func (s *labelService) BulkDiscard(ctx context.Context, req domain.BulkLabelActionRequest, orgID string) (domain.BulkLabelActionResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return domain.BulkLabelActionResponse{}, domain.ErrDiscardReasonRequired
	}
	return s.bulkApply(req.LabelIDs, func(id string) error {
		return s.Discard(ctx, id, domain.DiscardLabelRequest{Reason: req.Reason}, orgID)
	})
}

func (s *labelService) bulkApply(labelIDs []string, apply func(id string) error) (domain.BulkLabelActionResponse, error) {
	var response domain.BulkLabelActionResponse
	for _, id := range labelIDs {
		if err := apply(id); err != nil {
			response.Failed = append(response.Failed, domain.BulkLabelFailure{
				LabelID: id,
				Reason:  err.Error(),
			})
			continue
		}
		response.Succeeded = append(response.Succeeded, id)
	}
	return response, nil
}

func (s *labelService) SaveDraft(ctx context.Context, req domain.SaveDraftRequest, orgID, userID string) (domain.DraftResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.DraftResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DraftResponse{}, domain.ErrParseUUID
	}

	draft := &entities.LabelDraft{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		UserID:         userUUID,
		Name:           req.Name,
		Condition:      req.Condition,
		Quantity:       req.Quantity,
		UnitName:       req.UnitName,
		BatchNumber:    req.BatchNumber,
	}

	if req.ProductID != "" {
		productUUID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return domain.DraftResponse{}, domain.ErrParseUUID
		}
		draft.ProductID = &productUUID
	}
	if req.PrepDate != "" {
		prepDate, err := time.Parse("2006-01-02", req.PrepDate)
		if err != nil {
			return domain.DraftResponse{}, domain.ErrInvalidPrepDate
		}
		draft.PrepDate = &prepDate
	}

	if err := s.labelRepository.CreateDraft(ctx, draft); err != nil {
		return domain.DraftResponse{}, err
	}

	return toDraftResponse(draft), nil
}

func (s *labelService) GetDrafts(ctx context.Context, orgID, userID string) ([]domain.DraftResponse, error) {
	drafts, err := s.labelRepository.GetDrafts(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DraftResponse, 0, len(drafts))
	for _, draft := range drafts {
		response = append(response, toDraftResponse(draft))
	}
	return response, nil
}

func (s *labelService) DeleteDraft(ctx context.Context, draftID string, orgID, userID string) error {
	draft, err := s.labelRepository.GetDraftByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDraftNotFound
		}
		return err
	}
	if draft.OrganizationID.String() != orgID || draft.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	return s.labelRepository.DeleteDraft(ctx, draftID)
}

func toProductInfo(product *entities.Product) ProductInfo {
	info := ProductInfo{
		ID:               product.ID,
		Name:             product.Name,
		CategoryID:       product.CategoryID,
		SubcategoryID:    product.SubcategoryID,
		DefaultCondition: Condition(product.DefaultCondition),
	}
	if product.Category != nil {
		info.CategoryName = product.Category.Name
	}
	if product.Subcategory != nil {
		info.SubcategoryName = product.Subcategory.Name
	}
	if product.Unit != nil {
		info.UnitName = product.Unit.Name
	}
	return info
}

func toLabelResponse(printedLabel *entities.PrintedLabel, now time.Time) domain.PrintedLabelResponse {
	effective := EffectiveStatus(Status(printedLabel.Status), printedLabel.ExpiryDate, now)

	var allergens []string
	if printedLabel.AllergenNames != "" {
		allergens = strings.Split(printedLabel.AllergenNames, ", ")
	}

	return domain.PrintedLabelResponse{
		ID:              printedLabel.ID.String(),
		ProductName:     printedLabel.ProductName,
		CategoryName:    printedLabel.CategoryName,
		SubcategoryName: printedLabel.SubcategoryName,
		Condition:       printedLabel.Condition,
		PrepDate:        printedLabel.PrepDate,
		ExpiryDate:      printedLabel.ExpiryDate,
		Quantity:        printedLabel.Quantity,
		UnitName:        printedLabel.UnitName,
		BatchNumber:     printedLabel.BatchNumber,
		PreparedByName:  printedLabel.PreparedByName,
		Allergens:       allergens,
		Format:          printedLabel.Format,
		Status:          string(effective),
		DaysUntilExpiry: DaysUntil(printedLabel.ExpiryDate, now),
		CreatedAt:       printedLabel.CreatedAt,
	}
}

func toDraftResponse(draft *entities.LabelDraft) domain.DraftResponse {
	response := domain.DraftResponse{
		ID:          draft.ID.String(),
		Name:        draft.Name,
		Condition:   draft.Condition,
		PrepDate:    draft.PrepDate,
		Quantity:    draft.Quantity,
		UnitName:    draft.UnitName,
		BatchNumber: draft.BatchNumber,
		CreatedAt:   draft.CreatedAt,
	}
	if draft.ProductID != nil {
		response.ProductID = draft.ProductID.String()
	}
	return response
}
