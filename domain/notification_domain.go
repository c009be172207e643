package domain

import (
	"errors"
	"time"
)

const (
	NotificationKindExpiry  = "expiry"
	NotificationKindTeam    = "team"
	NotificationKindBilling = "billing"
	NotificationKindPrinter = "printer"
	NotificationKindGeneral = "general"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"
	MessageSuccessMarkAllRead      = "all notifications marked as read"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"
	MessageFailedMarkAllRead      = "failed to mark all notifications as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	NotificationResponse struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Body      string    `json:"body,omitempty"`
		Kind      string    `json:"kind"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}
)
