package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPlans           = "subscription plans retrieved successfully"
	MessageSuccessCreateTransaction  = "subscription transaction created successfully"
	MessageSuccessWebhook            = "webhook processed successfully"
	MessageSuccessGetSubscription    = "subscription retrieved successfully"

	MessageFailedGetPlans          = "failed to retrieve subscription plans"
	MessageFailedCreateTransaction = "failed to create subscription transaction"
	MessageFailedWebhook           = "failed to process webhook"
	MessageFailedGetSubscription   = "failed to retrieve subscription"

	ErrPlanNotFound        = errors.New("subscription plan not found")
	ErrTransactionNotFound = errors.New("subscription transaction not found")
	ErrNoActiveSubscription = errors.New("organization has no active subscription")
)

type (
	SubscriptionPlanResponse struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Price          int64  `json:"price"`
		Currency       string `json:"currency"`
		IntervalMonths int    `json:"interval_months"`
		MaxTeamMembers int    `json:"max_team_members"`
		MaxPrinters    int    `json:"max_printers"`
		Description    string `json:"description,omitempty"`
	}

	CreateSubscriptionRequest struct {
		PlanID string `json:"plan_id" validate:"required,uuid"`
	}

	CreateSubscriptionResponse struct {
		OrderID     string `json:"order_id"`
		SnapToken   string `json:"snap_token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
		GrossAmount       string `json:"gross_amount"`
	}

	SubscriptionStatusResponse struct {
		PlanName  string     `json:"plan_name"`
		Status    string     `json:"status"`
		PaidAt    *time.Time `json:"paid_at,omitempty"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}
)
