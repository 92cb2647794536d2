package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"diaryhub/internal/domain"
	"diaryhub/internal/repository"
)

var (
	ErrNoNotifications      = errors.New("user has no notifications")
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListForRecipient returns the recipient's notifications, newest first.
// ErrNoNotifications signals the empty state explicitly so the transport can
// render a friendlier message than a bare empty list.
func (s *NotificationService) ListForRecipient(ctx context.Context, recipientID uuid.UUID) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return nil, ErrNoNotifications
	}
	return notifications, nil
}

// MarkRead stamps read_at on a notification. Only the recipient may do so.
func (s *NotificationService) MarkRead(ctx context.Context, callerID, id uuid.UUID) (*domain.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	if notification.RecipientID != callerID {
		return nil, ErrNotOwner
	}

	now := time.Now()
	if err := s.notificationRepo.MarkRead(ctx, id, now); err != nil {
		return nil, err
	}
	notification.ReadAt = &now
	return notification, nil
}
