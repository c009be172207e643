package notification

import (
	"context"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		GetNotifications(ctx context.Context, orgID string, userID string, page, limit int) ([]*entities.Notification, int64, error)
		MarkRead(ctx context.Context, id string) error
		MarkAllRead(ctx context.Context, orgID string, userID string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// visibleTo scopes the feed to org-wide rows plus rows addressed to the member.
func visibleTo(orgID string, userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ? AND (recipient_id IS NULL OR recipient_id = ?)", orgID, userID)
	}
}

func (r *notificationRepository) GetNotifications(ctx context.Context, orgID string, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	var (
		notifications []*entities.Notification
		count         int64
	)

	query := r.db.WithContext(ctx).Model(&entities.Notification{}).Scopes(visibleTo(orgID, userID))

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, orgID string, userID string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Scopes(visibleTo(orgID, userID)).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}
