package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"anphu.vn/residencehub/internal/entity"
	notifRepo "anphu.vn/residencehub/internal/modules/notification/repository"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type NotificationService interface {
	Notify(ctx context.Context, userID uuid.UUID, entityType string, entityID uint, kind, message string) error
	GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        notifRepo.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo notifRepo.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

// Notify persists the notification row and fans it out over Redis pub/sub for
// any live websocket subscriber of the recipient.
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, entityType string, entityID uint, kind, message string) error {
	notification := &entity.Notification{
		UserID:     userID,
		EntityID:   entityID,
		EntityType: entityType,
		Type:       kind,
		Message:    message,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	if s.redisClient != nil {
		channel := fmt.Sprintf("user_notifications:%s", userID.String())

		payload, err := json.Marshal(notification)
		if err == nil {
			s.redisClient.Publish(ctx, channel, payload)
		}
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.MarkAsRead(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("notification not found: %w", apperror.ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
