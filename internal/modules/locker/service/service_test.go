package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/locker/dto"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memLockerRepo struct {
	lockers  map[uint]*entity.Locker
	packages map[uint]*entity.Package
	owners   map[uint]uuid.UUID
	nextID   uint
}

func newMemLockerRepo() *memLockerRepo {
	return &memLockerRepo{
		lockers:  map[uint]*entity.Locker{},
		packages: map[uint]*entity.Package{},
		owners:   map[uint]uuid.UUID{},
		nextID:   1,
	}
}

func (m *memLockerRepo) CreateLocker(ctx context.Context, locker *entity.Locker) error {
	locker.ID = m.nextID
	m.nextID++
	m.lockers[locker.ID] = locker
	return nil
}

func (m *memLockerRepo) FindLockerByID(ctx context.Context, id uint) (*entity.Locker, error) {
	if locker, ok := m.lockers[id]; ok {
		return locker, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memLockerRepo) FindLockers(ctx context.Context, offset, limit int) ([]entity.Locker, int64, error) {
	var out []entity.Locker
	for _, locker := range m.lockers {
		out = append(out, *locker)
	}
	return out, int64(len(out)), nil
}

func (m *memLockerRepo) AssignOwner(ctx context.Context, lockerID uint, userID uuid.UUID) error {
	m.owners[lockerID] = userID
	return nil
}

func (m *memLockerRepo) FindOwner(ctx context.Context, lockerID uint) (*entity.User, error) {
	if userID, ok := m.owners[lockerID]; ok {
		return &entity.User{ID: userID}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memLockerRepo) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	pkg.ID = m.nextID
	m.nextID++
	m.packages[pkg.ID] = pkg
	return nil
}

func (m *memLockerRepo) FindPackageByID(ctx context.Context, id uint) (*entity.Package, error) {
	if pkg, ok := m.packages[id]; ok {
		return pkg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memLockerRepo) FindPackagesByLockerID(ctx context.Context, lockerID uint, status string) ([]entity.Package, error) {
	var out []entity.Package
	for _, pkg := range m.packages {
		if pkg.LockerID != lockerID || !pkg.Active {
			continue
		}
		if status != "" && string(pkg.Status) != status {
			continue
		}
		out = append(out, *pkg)
	}
	return out, nil
}

func (m *memLockerRepo) UpdatePackageStatus(ctx context.Context, lockerID, packageID uint, status entity.PackageStatus) error {
	pkg, ok := m.packages[packageID]
	if !ok || pkg.LockerID != lockerID {
		return gorm.ErrRecordNotFound
	}
	pkg.Status = status
	return nil
}

func (m *memLockerRepo) DeletePackage(ctx context.Context, lockerID, packageID uint) error {
	pkg, ok := m.packages[packageID]
	if !ok || pkg.LockerID != lockerID {
		return gorm.ErrRecordNotFound
	}
	delete(m.packages, packageID)
	return nil
}

func (m *memLockerRepo) SearchPackages(ctx context.Context, q string, lockerID uint, status string, offset, limit int) ([]entity.Package, int64, error) {
	var all []entity.Package
	for _, pkg := range m.packages {
		if !pkg.Active {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(pkg.Name), strings.ToLower(q)) {
			continue
		}
		if lockerID != 0 && pkg.LockerID != lockerID {
			continue
		}
		if status != "" && string(pkg.Status) != status {
			continue
		}
		all = append(all, *pkg)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
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

type fakeSearch struct {
	indexed []uint
	deleted []uint
}

func (f *fakeSearch) IndexPackage(pkg *entity.Package) error {
	f.indexed = append(f.indexed, pkg.ID)
	return nil
}

func (f *fakeSearch) DeletePackage(id uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSearch) IndexFeedback(feedback *entity.Feedback) error { return nil }

func TestCreatePackageRequiresLocker(t *testing.T) {
	repo := newMemLockerRepo()
	s := NewLockerService(repo, nil, nil)

	if _, err := s.CreatePackage(context.Background(), 42, dto.CreatePackageInput{Name: "box"}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing locker, got %v", err)
	}
}

func TestPackageLifecycle(t *testing.T) {
	repo := newMemLockerRepo()
	notifier := &fakeNotifier{}
	search := &fakeSearch{}
	s := NewLockerService(repo, notifier, search)

	locker, err := s.CreateLocker(context.Background(), dto.CreateLockerInput{Name: "A-101"})
	if err != nil {
		t.Fatalf("create locker failed: %v", err)
	}
	owner := uuid.New()
	if err := repo.AssignOwner(context.Background(), locker.ID, owner); err != nil {
		t.Fatalf("assign owner failed: %v", err)
	}

	pkg, err := s.CreatePackage(context.Background(), locker.ID, dto.CreatePackageInput{Name: "shoes"})
	if err != nil {
		t.Fatalf("create package failed: %v", err)
	}
	if pkg.Status != entity.PackageWaiting {
		t.Fatalf("new package status = %s, want waiting", pkg.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "package_arrived" {
		t.Fatalf("expected package_arrived notification, got %v", notifier.sent)
	}
	if len(search.indexed) != 1 {
		t.Fatalf("expected package indexed once, got %d", len(search.indexed))
	}

	// Pickup
	updated, err := s.UpdatePackageStatus(context.Background(), locker.ID, pkg.ID, dto.UpdatePackageStatusInput{Status: "received"})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != entity.PackageReceived {
		t.Fatalf("status = %s, want received", updated.Status)
	}

	received, err := s.GetLockerPackages(context.Background(), locker.ID, "")
	if err != nil {
		t.Fatalf("get packages failed: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("default listing should show received packages, got %d", len(received))
	}

	if err := s.DeletePackage(context.Background(), locker.ID, pkg.ID); err != nil {
		t.Fatalf("delete package failed: %v", err)
	}
	if len(search.deleted) != 1 || search.deleted[0] != pkg.ID {
		t.Fatalf("expected package removed from index, got %v", search.deleted)
	}
}

func TestUpdatePackageStatusValidation(t *testing.T) {
	repo := newMemLockerRepo()
	s := NewLockerService(repo, nil, nil)

	lockerA, _ := s.CreateLocker(context.Background(), dto.CreateLockerInput{Name: "A"})
	lockerB, _ := s.CreateLocker(context.Background(), dto.CreateLockerInput{Name: "B"})
	pkg, err := s.CreatePackage(context.Background(), lockerA.ID, dto.CreatePackageInput{Name: "books"})
	if err != nil {
		t.Fatalf("create package failed: %v", err)
	}

	// Missing package
	if _, err := s.UpdatePackageStatus(context.Background(), lockerA.ID, 999, dto.UpdatePackageStatusInput{Status: "received"}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Wrong locker
	_, err = s.UpdatePackageStatus(context.Background(), lockerB.ID, pkg.ID, dto.UpdatePackageStatusInput{Status: "received"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for foreign package, got %v", err)
	}

	// Unknown status
	if _, err := s.UpdatePackageStatus(context.Background(), lockerA.ID, pkg.ID, dto.UpdatePackageStatusInput{Status: "lost"}); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad status, got %v", err)
	}

	// Delete has the same membership precondition
	if err := s.DeletePackage(context.Background(), lockerB.ID, pkg.ID); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for foreign delete, got %v", err)
	}
}

func TestSearchPackages(t *testing.T) {
	repo := newMemLockerRepo()
	s := NewLockerService(repo, nil, nil)

	locker, _ := s.CreateLocker(context.Background(), dto.CreateLockerInput{Name: "C"})
	for _, name := range []string{"big box", "small box", "envelope"} {
		if _, err := s.CreatePackage(context.Background(), locker.ID, dto.CreatePackageInput{Name: name}); err != nil {
			t.Fatalf("create package failed: %v", err)
		}
	}

	res, err := s.SearchPackages(context.Background(), dto.PackageSearchQuery{Q: "BOX", LockerID: locker.ID})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Data) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Data))
	}
	if res.Meta.TotalItems != 2 {
		t.Fatalf("meta total = %d, want 2", res.Meta.TotalItems)
	}
}
