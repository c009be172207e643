package label

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
	"preplabel-backend/pkg/catalog"
)

type fakeLabelRepository struct {
	labels  map[string]*entities.PrintedLabel
	created []*entities.PrintedLabel
}

func newFakeLabelRepository() *fakeLabelRepository {
	return &fakeLabelRepository{labels: map[string]*entities.PrintedLabel{}}
}

func (r *fakeLabelRepository) CreatePrintedLabel(_ context.Context, printedLabel *entities.PrintedLabel) error {
	r.labels[printedLabel.ID.String()] = printedLabel
	r.created = append(r.created, printedLabel)
	return nil
}

func (r *fakeLabelRepository) GetPrintedLabelByID(_ context.Context, id string) (*entities.PrintedLabel, error) {
	printedLabel, ok := r.labels[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return printedLabel, nil
}

func (r *fakeLabelRepository) UpdateLabelStatus(_ context.Context, id string, status string, reason string, at time.Time) error {
	printedLabel, ok := r.labels[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	printedLabel.Status = status
	printedLabel.StatusReason = reason
	printedLabel.StatusSetAt = &at
	return nil
}

func (r *fakeLabelRepository) UpdateLabelExpiry(_ context.Context, id string, expiry time.Time, reason string) error {
	printedLabel, ok := r.labels[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	printedLabel.ExpiryDate = expiry
	printedLabel.StatusReason = reason
	return nil
}

func (r *fakeLabelRepository) GetPrintedLabels(_ context.Context, orgID string, status string, page, limit int) ([]*entities.PrintedLabel, int64, error) {
	var out []*entities.PrintedLabel
	for _, printedLabel := range r.labels {
		if printedLabel.OrganizationID.String() != orgID {
			continue
		}
		if status != "" && printedLabel.Status != status {
			continue
		}
		out = append(out, printedLabel)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLabelRepository) GetLabelsExpiringBy(_ context.Context, orgID string, deadline time.Time) ([]*entities.PrintedLabel, error) {
	var out []*entities.PrintedLabel
	for _, printedLabel := range r.labels {
		if printedLabel.OrganizationID.String() != orgID || printedLabel.Status != string(StatusActive) {
			continue
		}
		if printedLabel.ExpiryDate.After(deadline) {
			continue
		}
		out = append(out, printedLabel)
	}
	return out, nil
}

func (r *fakeLabelRepository) CreateDraft(context.Context, *entities.LabelDraft) error {
	return nil
}

func (r *fakeLabelRepository) GetDraftByID(context.Context, string) (*entities.LabelDraft, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLabelRepository) GetDrafts(context.Context, string, string) ([]*entities.LabelDraft, error) {
	return nil, nil
}

func (r *fakeLabelRepository) DeleteDraft(context.Context, string) error {
	return nil
}

// fakeCatalogRepository embeds the interface so only the methods the label
// service touches need real implementations.
type fakeCatalogRepository struct {
	catalog.CatalogRepository
	products  map[string]*entities.Product
	allergens map[string][]*entities.Allergen
}

func (r *fakeCatalogRepository) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (r *fakeCatalogRepository) GetProductAllergens(_ context.Context, productID string) ([]*entities.Allergen, error) {
	return r.allergens[productID], nil
}

type fakeDispatcher struct {
	calls int
	err   error
}

func (d *fakeDispatcher) Dispatch(context.Context, Format, LabelData, []string, *uuid.UUID) error {
	d.calls++
	return d.err
}

func seedService(t *testing.T) (LabelService, *fakeLabelRepository, *fakeDispatcher, uuid.UUID, *entities.Product) {
	t.Helper()

	orgID := uuid.New()
	product := &entities.Product{
		ID:               uuid.New(),
		OrganizationID:   orgID,
		Name:             "Chicken Breast",
		DefaultCondition: "refrigerated",
	}

	labelRepository := newFakeLabelRepository()
	catalogRepository := &fakeCatalogRepository{
		products: map[string]*entities.Product{product.ID.String(): product},
		allergens: map[string][]*entities.Allergen{
			product.ID.String(): {{Name: "soy"}},
		},
	}
	dispatcher := &fakeDispatcher{}

	return NewLabelService(labelRepository, catalogRepository, dispatcher), labelRepository, dispatcher, orgID, product
}

func TestQuickPrintPersistsSnapshot(t *testing.T) {
	service, labelRepository, dispatcher, orgID, product := seedService(t)

	res, err := service.QuickPrint(context.Background(), domain.QuickPrintRequest{
		ProductID: product.ID.String(),
		PrepDate:  "2025-06-10",
		Format:    "generic",
	}, orgID.String(), uuid.New().String(), "Alex")
	require.NoError(t, err)

	assert.Equal(t, 1, dispatcher.calls)
	require.Len(t, labelRepository.created, 1)

	stored := labelRepository.created[0]
	assert.Equal(t, "Chicken Breast", stored.ProductName)
	assert.Equal(t, "refrigerated", stored.Condition)
	assert.Equal(t, string(StatusActive), stored.Status)
	assert.Equal(t, "soy", stored.AllergenNames)
	assert.Equal(t, []string{"soy"}, res.Allergens)
	assert.Equal(t, time.Date(2025, time.June, 17, 0, 0, 0, 0, time.UTC), stored.ExpiryDate)
}

func TestQuickPrintDispatchFailureLeavesNoRecord(t *testing.T) {
	service, labelRepository, dispatcher, orgID, product := seedService(t)
	dispatcher.err = domain.ErrDispatchFailed

	_, err := service.QuickPrint(context.Background(), domain.QuickPrintRequest{
		ProductID: product.ID.String(),
		PrepDate:  "2025-06-10",
		Format:    "thermal",
	}, orgID.String(), uuid.New().String(), "Alex")

	assert.ErrorIs(t, err, domain.ErrDispatchFailed)
	assert.Empty(t, labelRepository.created)
}

func TestQuickPrintRejectsBadPrepDate(t *testing.T) {
	service, _, dispatcher, orgID, product := seedService(t)

	_, err := service.QuickPrint(context.Background(), domain.QuickPrintRequest{
		ProductID: product.ID.String(),
		PrepDate:  "10/06/2025",
		Format:    "generic",
	}, orgID.String(), uuid.New().String(), "Alex")

	assert.ErrorIs(t, err, domain.ErrInvalidPrepDate)
	assert.Zero(t, dispatcher.calls)
}

func TestQuickPrintRejectsForeignProduct(t *testing.T) {
	service, _, _, _, product := seedService(t)

	_, err := service.QuickPrint(context.Background(), domain.QuickPrintRequest{
		ProductID: product.ID.String(),
		PrepDate:  "2025-06-10",
		Format:    "generic",
	}, uuid.New().String(), uuid.New().String(), "Alex")

	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func seedPrintedLabel(labelRepository *fakeLabelRepository, orgID uuid.UUID, status Status) *entities.PrintedLabel {
	printedLabel := &entities.PrintedLabel{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ProductName:    "Stock",
		Status:         string(status),
		ExpiryDate:     time.Now().AddDate(0, 0, 5),
	}
	labelRepository.labels[printedLabel.ID.String()] = printedLabel
	return printedLabel
}

func TestBulkConsumePartialFailure(t *testing.T) {
	service, labelRepository, _, orgID, _ := seedService(t)

	active := seedPrintedLabel(labelRepository, orgID, StatusActive)
	used := seedPrintedLabel(labelRepository, orgID, StatusUsed)
	missing := uuid.New().String()

	res, err := service.BulkConsume(context.Background(), domain.BulkLabelActionRequest{
		LabelIDs: []string{active.ID.String(), used.ID.String(), missing},
	}, orgID.String())
	require.NoError(t, err)

	assert.Equal(t, []string{active.ID.String()}, res.Succeeded)
	require.Len(t, res.Failed, 2)

	// the successful transition stays applied despite sibling failures
	assert.Equal(t, string(StatusUsed), labelRepository.labels[active.ID.String()].Status)
}

func TestBulkDiscardRequiresReason(t *testing.T) {
	service, labelRepository, _, orgID, _ := seedService(t)
	active := seedPrintedLabel(labelRepository, orgID, StatusActive)

	_, err := service.BulkDiscard(context.Background(), domain.BulkLabelActionRequest{
		LabelIDs: []string{active.ID.String()},
	}, orgID.String())
	assert.ErrorIs(t, err, domain.ErrDiscardReasonRequired)

	res, err := service.BulkDiscard(context.Background(), domain.BulkLabelActionRequest{
		LabelIDs: []string{active.ID.String()},
		Reason:   "end of day",
	}, orgID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{active.ID.String()}, res.Succeeded)
	assert.Equal(t, string(StatusWasted), labelRepository.labels[active.ID.String()].Status)
}

func TestExtendKeepsStatus(t *testing.T) {
	service, labelRepository, _, orgID, _ := seedService(t)
	active := seedPrintedLabel(labelRepository, orgID, StatusActive)

	newDate := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	err := service.Extend(context.Background(), active.ID.String(), domain.ExtendLabelRequest{
		NewExpiryDate: newDate,
		Reason:        "moved to freezer",
	}, orgID.String())
	require.NoError(t, err)

	assert.Equal(t, string(StatusActive), labelRepository.labels[active.ID.String()].Status)
}

func TestConsumeUnknownLabel(t *testing.T) {
	service, _, _, orgID, _ := seedService(t)

	err := service.Consume(context.Background(), uuid.New().String(), orgID.String())
	assert.True(t, errors.Is(err, domain.ErrLabelNotFound))
}
