package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/logger"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
)

// notificationService handles in-app notifications.
type notificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(db *gorm.DB) NotificationServicer {
	return &notificationService{db: db}
}

// Notify records a notification for a user. Errors are logged but never
// propagate to avoid disrupting the main operation.
func (s *notificationService) Notify(userID, title, message, notificationType string) {
	if notificationType == "" {
		notificationType = "info"
	}

	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}

	if err := s.db.Create(notification).Error; err != nil {
		logger.Get().Errorw("failed to create notification",
			"error", err,
			"user_id", userID,
			"title", title,
		)
	}
}

// GetUserNotifications retrieves a paginated list of the user's
// notifications, most recent first.
func (s *notificationService) GetUserNotifications(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error) {
	page.Defaults()

	base := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var notifications []models.Notification
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(notifications, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// MarkRead marks a notification as read.
func (s *notificationService) MarkRead(userID, notificationID string) error {
	var notification models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
