package midtrans

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
	"preplabel-backend/pkg/notification"
)

type (
	MidtransService interface {
		GetPlans(ctx context.Context) ([]domain.SubscriptionPlanResponse, error)
		CreateTransaction(ctx context.Context, req domain.CreateSubscriptionRequest, orgID string, email string) (domain.CreateSubscriptionResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
		GetSubscriptionStatus(ctx context.Context, orgID string) (domain.SubscriptionStatusResponse, error)
	}

	midtransService struct {
		midtransRepository  MidtransRepository
		notificationService notification.NotificationService
		snapClient          snap.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository, notificationService notification.NotificationService) MidtransService {
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(os.Getenv("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository:  midtransRepository,
		notificationService: notificationService,
		snapClient:          client,
	}
}

func (s *midtransService) GetPlans(ctx context.Context) ([]domain.SubscriptionPlanResponse, error) {
	plans, err := s.midtransRepository.GetPlans(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SubscriptionPlanResponse, 0, len(plans))
	for _, plan := range plans {
		response = append(response, domain.SubscriptionPlanResponse{
			ID:             plan.ID.String(),
			Name:           plan.Name,
			Price:          plan.Price,
			Currency:       plan.Currency,
			IntervalMonths: plan.IntervalMonths,
			MaxTeamMembers: plan.MaxTeamMembers,
			MaxPrinters:    plan.MaxPrinters,
			Description:    plan.Description,
		})
	}
	return response, nil
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.CreateSubscriptionRequest, orgID string, email string) (domain.CreateSubscriptionResponse, error) {
	plan, err := s.midtransRepository.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateSubscriptionResponse{}, domain.ErrPlanNotFound
		}
		return domain.CreateSubscriptionResponse{}, err
	}

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.CreateSubscriptionResponse{}, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("SUB-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: plan.Price,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.ID.String(),
				Name:  plan.Name,
				Price: plan.Price,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateSubscriptionResponse{}, snapErr
	}

	transaction := &entities.SubscriptionTransaction{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		PlanID:         plan.ID,
		OrderID:        orderID,
		GrossAmount:    plan.Price,
		Status:         "pending",
		SnapToken:      snapResp.Token,
		RedirectURL:    snapResp.RedirectURL,
	}
	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateSubscriptionResponse{}, err
	}

	return domain.CreateSubscriptionResponse{
		OrderID:     orderID,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification applies a payment gateway callback to the matching
// transaction. Unknown order ids and repeated settlements are both
// rejected with domain errors so the gateway retries stay harmless.
func (s *midtransService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			transaction.Status = "cancelled"
			break
		}
		if transaction.Status == "settled" {
			return nil
		}
		now := time.Now()
		transaction.Status = "settled"
		transaction.PaidAt = &now
		if transaction.Plan != nil {
			expires := now.AddDate(0, transaction.Plan.IntervalMonths, 0)
			transaction.ExpiresAt = &expires
		}
	case "expire":
		transaction.Status = "expired"
	case "cancel", "deny":
		transaction.Status = "cancelled"
	default:
		// pending and other intermediate states leave the row untouched
		return nil
	}

	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.Status == "settled" && transaction.Plan != nil && transaction.ExpiresAt != nil {
		// feed write is best effort
		_ = s.notificationService.Notify(ctx, transaction.OrganizationID.String(), nil,
			domain.NotificationKindBilling, "Payment received",
			fmt.Sprintf("Subscription to %s is active until %s.", transaction.Plan.Name,
				transaction.ExpiresAt.Format("2006-01-02")))
	}

	return nil
}

func (s *midtransService) GetSubscriptionStatus(ctx context.Context, orgID string) (domain.SubscriptionStatusResponse, error) {
	transaction, err := s.midtransRepository.GetActiveSubscription(ctx, orgID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionStatusResponse{}, domain.ErrNoActiveSubscription
		}
		return domain.SubscriptionStatusResponse{}, err
	}

	response := domain.SubscriptionStatusResponse{
		Status:    transaction.Status,
		PaidAt:    transaction.PaidAt,
		ExpiresAt: transaction.ExpiresAt,
	}
	if transaction.Plan != nil {
		response.PlanName = transaction.Plan.Name
	}
	return response, nil
}
