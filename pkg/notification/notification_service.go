package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, orgID string, userID string, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkRead(ctx context.Context, id string, orgID string) error
		MarkAllRead(ctx context.Context, orgID string, userID string) error
		Notify(ctx context.Context, orgID string, recipientID *string, kind string, title string, body string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetNotifications(ctx context.Context, orgID string, userID string, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.notificationRepository.GetNotifications(ctx, orgID, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, domain.NotificationResponse{
			ID:        notification.ID.String(),
			Title:     notification.Title,
			Body:      notification.Body,
			Kind:      notification.Kind,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}
	return response, count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, orgID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	if notification.OrganizationID.String() != orgID {
		return domain.ErrUserNotAllowed
	}
	return s.notificationRepository.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, orgID string, userID string) error {
	return s.notificationRepository.MarkAllRead(ctx, orgID, userID)
}

// Notify writes a feed entry. A nil recipientID addresses the whole
// organization.
func (s *notificationService) Notify(ctx context.Context, orgID string, recipientID *string, kind string, title string, body string) error {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.ErrParseUUID
	}

	notification := &entities.Notification{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Title:          title,
		Body:           body,
		Kind:           kind,
	}

	if recipientID != nil {
		recipientUUID, err := uuid.Parse(*recipientID)
		if err != nil {
			return domain.ErrParseUUID
		}
		notification.RecipientID = &recipientUUID
	}

	return s.notificationRepository.CreateNotification(ctx, notification)
}
