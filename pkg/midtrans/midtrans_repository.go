package midtrans

import (
	"context"
	"time"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

type (
	MidtransRepository interface {
		GetPlans(ctx context.Context) ([]*entities.SubscriptionPlan, error)
		GetPlanByID(ctx context.Context, id string) (*entities.SubscriptionPlan, error)
		CreateTransaction(ctx context.Context, tx *entities.SubscriptionTransaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.SubscriptionTransaction, error)
		UpdateTransaction(ctx context.Context, tx *entities.SubscriptionTransaction) error
		GetActiveSubscription(ctx context.Context, orgID string, now time.Time) (*entities.SubscriptionTransaction, error)
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) GetPlans(ctx context.Context) ([]*entities.SubscriptionPlan, error) {
	var plans []*entities.SubscriptionPlan
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *midtransRepository) GetPlanByID(ctx context.Context, id string) (*entities.SubscriptionPlan, error) {
	var plan entities.SubscriptionPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *midtransRepository) CreateTransaction(ctx context.Context, tx *entities.SubscriptionTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *midtransRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.SubscriptionTransaction, error) {
	var tx entities.SubscriptionTransaction
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("order_id = ?", orderID).
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *midtransRepository) UpdateTransaction(ctx context.Context, tx *entities.SubscriptionTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *midtransRepository) GetActiveSubscription(ctx context.Context, orgID string, now time.Time) (*entities.SubscriptionTransaction, error) {
	var tx entities.SubscriptionTransaction
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("organization_id = ? AND status = ? AND expires_at > ?", orgID, "settled", now).
		Order("expires_at desc").
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}
