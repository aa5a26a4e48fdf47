package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/billing/dto"
	"anphu.vn/residencehub/pkg/apperror"
	commonDto "anphu.vn/residencehub/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memBillingRepo struct {
	services map[uint]*entity.Service
	bills    map[uint]*entity.Bill
	payments map[uint]*entity.Payment
	nextID   uint
}

func newMemBillingRepo() *memBillingRepo {
	return &memBillingRepo{
		services: map[uint]*entity.Service{},
		bills:    map[uint]*entity.Bill{},
		payments: map[uint]*entity.Payment{},
		nextID:   1,
	}
}

func (m *memBillingRepo) FindServices(ctx context.Context, nameFilter string) ([]entity.Service, error) {
	var out []entity.Service
	for _, svc := range m.services {
		if svc.Active && (nameFilter == "" || strings.Contains(strings.ToLower(svc.Name), strings.ToLower(nameFilter))) {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (m *memBillingRepo) FindServicesByIDs(ctx context.Context, ids []uint) ([]entity.Service, error) {
	var out []entity.Service
	for _, id := range ids {
		if svc, ok := m.services[id]; ok {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (m *memBillingRepo) CreateBill(ctx context.Context, bill *entity.Bill) error {
	bill.ID = m.nextID
	m.nextID++
	m.bills[bill.ID] = bill
	return nil
}

func (m *memBillingRepo) FindBillByID(ctx context.Context, id uint) (*entity.Bill, error) {
	if bill, ok := m.bills[id]; ok {
		return bill, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memBillingRepo) FindBillsByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.Bill, int64, error) {
	var all []entity.Bill
	for _, bill := range m.bills {
		if bill.UserID == userID && bill.Active {
			all = append(all, *bill)
		}
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

func (m *memBillingRepo) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	payment.ID = m.nextID
	m.nextID++
	m.payments[payment.ID] = payment
	return nil
}

func (m *memBillingRepo) FindPaymentByID(ctx context.Context, id uint) (*entity.Payment, error) {
	if payment, ok := m.payments[id]; ok {
		return payment, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memBillingRepo) FindPaymentsByUserID(ctx context.Context, userID uuid.UUID, status string, offset, limit int) ([]entity.Payment, int64, error) {
	var all []entity.Payment
	for _, payment := range m.payments {
		if payment.UserID != userID || !payment.Active {
			continue
		}
		if status != "" && string(payment.Status) != status {
			continue
		}
		all = append(all, *payment)
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

func (m *memBillingRepo) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	m.payments[payment.ID] = payment
	return nil
}

type fakeImageStorage struct {
	uploads int
}

func (f *fakeImageStorage) UploadImage(ctx context.Context, file io.Reader, folder, fileName string) (string, error) {
	f.uploads++
	return "https://img.example/" + folder + "/" + fileName, nil
}

func (f *fakeImageStorage) DeleteImage(ctx context.Context, imageURL string) error { return nil }

func seedBill(repo *memBillingRepo, userID uuid.UUID, prices ...float64) *entity.Bill {
	var services []entity.Service
	for _, price := range prices {
		svc := &entity.Service{ID: repo.nextID, Name: "svc", Price: price, Active: true}
		repo.nextID++
		repo.services[svc.ID] = svc
		services = append(services, *svc)
	}
	bill := &entity.Bill{UserID: userID, Services: services, Active: true}
	_ = repo.CreateBill(context.Background(), bill)
	return bill
}

func TestCreatePaymentDerivesOwnerFromBill(t *testing.T) {
	repo := newMemBillingRepo()
	owner := uuid.New()
	bill := seedBill(repo, owner, 100, 50)

	s := NewBillingService(repo, &fakeImageStorage{}, nil)

	payment, err := s.CreatePayment(context.Background(), bill.ID, dto.CreatePaymentInput{Amount: 150})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.UserID != owner {
		t.Fatalf("payment owner = %s, want bill owner %s", payment.UserID, owner)
	}
	if payment.Status != entity.PaymentPending {
		t.Fatalf("new payment status = %s, want pending", payment.Status)
	}
	if payment.TransactionID == "" {
		t.Fatalf("expected generated transaction id")
	}

	if _, err := s.CreatePayment(context.Background(), 999, dto.CreatePaymentInput{Amount: 10}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing bill, got %v", err)
	}
}

func TestSubmitProof(t *testing.T) {
	repo := newMemBillingRepo()
	storage := &fakeImageStorage{}
	owner := uuid.New()
	stranger := uuid.New()
	bill := seedBill(repo, owner, 200)

	s := NewBillingService(repo, storage, nil)

	payment, err := s.CreatePayment(context.Background(), bill.ID, dto.CreatePaymentInput{Amount: 200})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	image := &commonDto.ImageFile{Reader: strings.NewReader("jpeg bytes"), FileName: "proof.jpg"}

	// Missing payment
	if _, err := s.SubmitProof(context.Background(), owner, 999, image); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Wrong owner
	if _, err := s.SubmitProof(context.Background(), stranger, payment.ID, image); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Missing image
	if _, err := s.SubmitProof(context.Background(), owner, payment.ID, nil); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if storage.uploads != 0 {
		t.Fatalf("no upload should have happened yet")
	}

	// Success
	updated, err := s.SubmitProof(context.Background(), owner, payment.ID, image)
	if err != nil {
		t.Fatalf("submit proof failed: %v", err)
	}
	if updated.Status != entity.PaymentPassed {
		t.Fatalf("payment status = %s, want pass", updated.Status)
	}
	if updated.ProofImageURL == nil || *updated.ProofImageURL == "" {
		t.Fatalf("expected stored proof image url")
	}
	if storage.uploads != 1 {
		t.Fatalf("expected one upload, got %d", storage.uploads)
	}
}

func TestGetPaymentsFiltersByOwnerAndStatus(t *testing.T) {
	repo := newMemBillingRepo()
	owner := uuid.New()
	other := uuid.New()
	billA := seedBill(repo, owner, 10)
	billB := seedBill(repo, other, 20)

	s := NewBillingService(repo, &fakeImageStorage{}, nil)

	for i := 0; i < 3; i++ {
		if _, err := s.CreatePayment(context.Background(), billA.ID, dto.CreatePaymentInput{Amount: 10}); err != nil {
			t.Fatalf("create payment failed: %v", err)
		}
	}
	if _, err := s.CreatePayment(context.Background(), billB.ID, dto.CreatePaymentInput{Amount: 20}); err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	res, err := s.GetPayments(context.Background(), owner, dto.PaymentQuery{Status: "pending"})
	if err != nil {
		t.Fatalf("get payments failed: %v", err)
	}
	if len(res.Data) != 3 {
		t.Fatalf("expected 3 payments for owner, got %d", len(res.Data))
	}
	for _, payment := range res.Data {
		if payment.UserID != owner {
			t.Fatalf("leaked foreign payment %d", payment.ID)
		}
	}

	res, err = s.GetPayments(context.Background(), owner, dto.PaymentQuery{Status: "pass"})
	if err != nil {
		t.Fatalf("get payments failed: %v", err)
	}
	if len(res.Data) != 0 {
		t.Fatalf("expected no passed payments, got %d", len(res.Data))
	}
}

func TestGetPaymentOwnership(t *testing.T) {
	repo := newMemBillingRepo()
	owner := uuid.New()
	bill := seedBill(repo, owner, 30)

	s := NewBillingService(repo, &fakeImageStorage{}, nil)
	payment, err := s.CreatePayment(context.Background(), bill.ID, dto.CreatePaymentInput{Amount: 30})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	if _, err := s.GetPayment(context.Background(), owner, payment.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := s.GetPayment(context.Background(), uuid.New(), payment.ID); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGetBillsComputesTotals(t *testing.T) {
	repo := newMemBillingRepo()
	owner := uuid.New()
	seedBill(repo, owner, 100, 50, 25)

	s := NewBillingService(repo, &fakeImageStorage{}, nil)
	res, err := s.GetBills(context.Background(), owner, commonDto.PageQuery{Page: 1})
	if err != nil {
		t.Fatalf("get bills failed: %v", err)
	}
	if len(res.Data) != 1 {
		t.Fatalf("expected 1 bill, got %d", len(res.Data))
	}
	if res.Data[0].TotalAmount != 175 {
		t.Fatalf("total = %v, want 175", res.Data[0].TotalAmount)
	}
}
