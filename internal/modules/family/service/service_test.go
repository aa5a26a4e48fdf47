package service

import (
	"context"
	"errors"
	"testing"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/family/dto"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memFamilyRepo struct {
	families map[uint]*entity.ResidentFamily
	cards    map[uint]*entity.AccessCard
	nextID   uint
}

func newMemFamilyRepo() *memFamilyRepo {
	return &memFamilyRepo{
		families: map[uint]*entity.ResidentFamily{},
		cards:    map[uint]*entity.AccessCard{},
		nextID:   1,
	}
}

func (m *memFamilyRepo) Create(ctx context.Context, family *entity.ResidentFamily) error {
	family.ID = m.nextID
	m.nextID++
	m.families[family.ID] = family
	return nil
}

func (m *memFamilyRepo) FindByID(ctx context.Context, id uint) (*entity.ResidentFamily, error) {
	family, ok := m.families[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if card, ok := m.cards[family.ID]; ok {
		family.AccessCard = card
	}
	return family, nil
}

func (m *memFamilyRepo) FindByNationalID(ctx context.Context, nationalID string) (*entity.ResidentFamily, error) {
	for _, family := range m.families {
		if family.NationalID == nationalID {
			return family, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memFamilyRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ResidentFamily, error) {
	var out []entity.ResidentFamily
	for _, family := range m.families {
		if family.UserID == userID && family.Active {
			out = append(out, *family)
		}
	}
	return out, nil
}

func (m *memFamilyRepo) Update(ctx context.Context, family *entity.ResidentFamily) error {
	m.families[family.ID] = family
	return nil
}

func (m *memFamilyRepo) CreateAccessCard(ctx context.Context, card *entity.AccessCard) error {
	card.ID = m.nextID
	m.nextID++
	m.cards[card.ResidentFamilyID] = card
	return nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Notify(ctx context.Context, userID uuid.UUID, entityType string, entityID uint, kind, message string) error {
	f.sent = append(f.sent, kind)
	return nil
}

func (f *fakeNotifier) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error { return nil }
func (f *fakeNotifier) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeNotifier) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func TestRegisterFamilyMemberRejectsDuplicateNationalID(t *testing.T) {
	repo := newMemFamilyRepo()
	s := NewFamilyService(repo, nil)

	resident := uuid.New()
	input := dto.RegisterFamilyInput{Name: "Nguyen Van A", NationalID: "012345678901", Phone: "0901234567"}

	family, err := s.RegisterFamilyMember(context.Background(), resident, input)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if family.Status != entity.FamilyPending {
		t.Fatalf("new record status = %s, want pending", family.Status)
	}

	// Same national id under a different resident
	_, err = s.RegisterFamilyMember(context.Background(), uuid.New(), input)
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate national id, got %v", err)
	}
}

func TestApproveFamilyMember(t *testing.T) {
	repo := newMemFamilyRepo()
	notifier := &fakeNotifier{}
	s := NewFamilyService(repo, notifier)

	resident := uuid.New()
	family, err := s.RegisterFamilyMember(context.Background(), resident, dto.RegisterFamilyInput{
		Name: "Tran Thi B", NationalID: "098765432109", Phone: "0907654321",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := s.ApproveFamilyMember(context.Background(), 999); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	approved, err := s.ApproveFamilyMember(context.Background(), family.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != entity.FamilyPassed {
		t.Fatalf("status = %s, want pass", approved.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "family_approved" {
		t.Fatalf("expected family_approved notification, got %v", notifier.sent)
	}

	// Approving twice is rejected
	if _, err := s.ApproveFamilyMember(context.Background(), family.ID); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on second approve, got %v", err)
	}
}

func TestIssueAccessCard(t *testing.T) {
	repo := newMemFamilyRepo()
	s := NewFamilyService(repo, nil)

	resident := uuid.New()
	family, err := s.RegisterFamilyMember(context.Background(), resident, dto.RegisterFamilyInput{
		Name: "Le Van C", NationalID: "111122223333", Phone: "0912345678",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Pending record gets no card
	if _, err := s.IssueAccessCard(context.Background(), family.ID); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pending record, got %v", err)
	}

	if _, err := s.ApproveFamilyMember(context.Background(), family.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	card, err := s.IssueAccessCard(context.Background(), family.ID)
	if err != nil {
		t.Fatalf("issue card failed: %v", err)
	}
	if card.ResidentFamilyID != family.ID {
		t.Fatalf("card family ref = %d, want %d", card.ResidentFamilyID, family.ID)
	}

	// One card per record
	if _, err := s.IssueAccessCard(context.Background(), family.ID); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on second card, got %v", err)
	}
}
