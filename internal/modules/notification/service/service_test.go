package service

import (
	"context"
	"errors"
	"testing"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memNotifRepo struct {
	rows []*entity.Notification
}

func (m *memNotifRepo) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	copied := *n
	m.rows = append(m.rows, &copied)
	return nil
}

func (m *memNotifRepo) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range m.rows {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *memNotifRepo) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	for _, n := range m.rows {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memNotifRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	for _, n := range m.rows {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *memNotifRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range m.rows {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func TestMarkAsReadScopedToOwner(t *testing.T) {
	repo := &memNotifRepo{}
	s := NewNotificationService(repo, nil)

	owner := uuid.New()
	stranger := uuid.New()

	if err := s.Notify(context.Background(), owner, "payment", 1, "payment_passed", "payment approved"); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	id := repo.rows[0].ID

	// Another resident cannot mark it read.
	if err := s.MarkAsRead(context.Background(), stranger, id); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign notification, got %v", err)
	}
	if repo.rows[0].IsRead {
		t.Fatalf("foreign caller marked the notification read")
	}

	if err := s.MarkAsRead(context.Background(), owner, id); err != nil {
		t.Fatalf("owner mark as read failed: %v", err)
	}
	if !repo.rows[0].IsRead {
		t.Fatalf("notification not marked read")
	}
}

func TestUnreadCountAndMarkAll(t *testing.T) {
	repo := &memNotifRepo{}
	s := NewNotificationService(repo, nil)

	owner := uuid.New()
	for i := 0; i < 3; i++ {
		if err := s.Notify(context.Background(), owner, "package", uint(i+1), "package_arrived", "a package arrived"); err != nil {
			t.Fatalf("notify failed: %v", err)
		}
	}

	count, err := s.UnreadCount(context.Background(), owner)
	if err != nil || count != 3 {
		t.Fatalf("unread count = %d, %v; want 3", count, err)
	}

	if err := s.MarkAllAsRead(context.Background(), owner); err != nil {
		t.Fatalf("mark all failed: %v", err)
	}
	count, err = s.UnreadCount(context.Background(), owner)
	if err != nil || count != 0 {
		t.Fatalf("unread count after mark all = %d, %v; want 0", count, err)
	}
}
