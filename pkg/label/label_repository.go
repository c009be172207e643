package label

import (
	"context"
	"time"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

type (
	LabelRepository interface {
		CreatePrintedLabel(ctx context.Context, printedLabel *entities.PrintedLabel) error
		GetPrintedLabelByID(ctx context.Context, id string) (*entities.PrintedLabel, error)
		UpdateLabelStatus(ctx context.Context, id string, status string, reason string, at time.Time) error
		UpdateLabelExpiry(ctx context.Context, id string, expiry time.Time, reason string) error
		GetPrintedLabels(ctx context.Context, orgID string, status string, page, limit int) ([]*entities.PrintedLabel, int64, error)
		GetLabelsExpiringBy(ctx context.Context, orgID string, deadline time.Time) ([]*entities.PrintedLabel, error)

		CreateDraft(ctx context.Context, draft *entities.LabelDraft) error
		GetDraftByID(ctx context.Context, id string) (*entities.LabelDraft, error)
		GetDrafts(ctx context.Context, orgID string, userID string) ([]*entities.LabelDraft, error)
		DeleteDraft(ctx context.Context, id string) error
	}

	labelRepository struct {
		db *gorm.DB
	}
)

func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) CreatePrintedLabel(ctx context.Context, printedLabel *entities.PrintedLabel) error {
	return r.db.WithContext(ctx).Create(printedLabel).Error
}

func (r *labelRepository) GetPrintedLabelByID(ctx context.Context, id string) (*entities.PrintedLabel, error) {
	var printedLabel entities.PrintedLabel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&printedLabel).Error; err != nil {
		return nil, err
	}
	return &printedLabel, nil
}

func (r *labelRepository) UpdateLabelStatus(ctx context.Context, id string, status string, reason string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.PrintedLabel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"status_reason": reason,
			"status_set_at": at,
		}).Error
}

func (r *labelRepository) UpdateLabelExpiry(ctx context.Context, id string, expiry time.Time, reason string) error {
	return r.db.WithContext(ctx).Model(&entities.PrintedLabel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"expiry_date":   expiry,
			"status_reason": reason,
		}).Error
}

func (r *labelRepository) GetPrintedLabels(ctx context.Context, orgID string, status string, page, limit int) ([]*entities.PrintedLabel, int64, error) {
	var printedLabels []*entities.PrintedLabel
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.PrintedLabel{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&printedLabels).Error; err != nil {
		return nil, 0, err
	}

	return printedLabels, count, nil
}

func (r *labelRepository) GetLabelsExpiringBy(ctx context.Context, orgID string, deadline time.Time) ([]*entities.PrintedLabel, error) {
	var printedLabels []*entities.PrintedLabel

	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ? AND expiry_date <= ?",
			orgID, string(StatusActive), deadline).
		Order("expiry_date asc").
		Find(&printedLabels).Error; err != nil {
		return nil, err
	}

	return printedLabels, nil
}

func (r *labelRepository) CreateDraft(ctx context.Context, draft *entities.LabelDraft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *labelRepository) GetDraftByID(ctx context.Context, id string) (*entities.LabelDraft, error) {
	var draft entities.LabelDraft
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&draft).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *labelRepository) GetDrafts(ctx context.Context, orgID string, userID string) ([]*entities.LabelDraft, error) {
	var drafts []*entities.LabelDraft
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Order("created_at desc").
		Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *labelRepository) DeleteDraft(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.LabelDraft{}).Error
}
