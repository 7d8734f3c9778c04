package repositories

import (
	"errors"
	"fmt"

	"github.com/anvers19/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations.
// The notification listener is the only writer; the API layer only reads and
// marks rows read. Rows are never hard-deleted.
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	CreateNotifications(notifications []models.Notification) error
	GetByRecipientID(recipientID string, page, limit int) ([]models.NotificationWithSender, int64, error)
	GetUnreadCount(recipientID string) (int64, error)
	MarkAsRead(notificationID, recipientID string) error
	MarkAllAsRead(recipientID string) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a NotificationRepository backed
// by PostgreSQL.
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// CreateNotifications inserts a fan-out batch. If the batch insert fails it
// falls back to row-by-row inserts so that one bad row cannot silently drop
// the rest; per-row failures are aggregated into the returned error.
func (r *postgresNotificationRepository) CreateNotifications(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(notifications, 100).Error; err == nil {
		return nil
	}

	var errs []error
	for i := range notifications {
		if err := r.db.Create(&notifications[i]).Error; err != nil {
			errs = append(errs, fmt.Errorf("notification for recipient %s: %w", notifications[i].RecipientID, err))
		}
	}
	return errors.Join(errs...)
}

// GetByRecipientID returns one user's notifications newest first, with the
// sender's username joined for display.
func (r *postgresNotificationRepository) GetByRecipientID(recipientID string, page, limit int) ([]models.NotificationWithSender, int64, error) {
	var total int64
	if err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ?", recipientID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.NotificationWithSender
	offset := (page - 1) * limit
	err := r.db.Model(&models.Notification{}).
		Select("notifications.*, users.username AS sender_name").
		Joins("LEFT JOIN users ON users.id = notifications.sender_id").
		Where("notifications.recipient_id = ?", recipientID).
		Order("notifications.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Count(&count).Error
	return count, err
}

// MarkAsRead flips a notification to read. Scoped to the recipient so a user
// cannot mark someone else's notification; marking twice is a no-op.
func (r *postgresNotificationRepository) MarkAsRead(notificationID, recipientID string) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID string) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Update("is_read", true).Error
}
