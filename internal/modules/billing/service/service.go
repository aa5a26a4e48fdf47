package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/billing/dto"
	"anphu.vn/residencehub/internal/modules/billing/repository"
	notifService "anphu.vn/residencehub/internal/modules/notification/service"
	"anphu.vn/residencehub/pkg/apperror"
	commonDto "anphu.vn/residencehub/pkg/dto"
	"anphu.vn/residencehub/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingService interface {
	GetServices(ctx context.Context, nameFilter string) ([]entity.Service, error)
	GetBills(ctx context.Context, userID uuid.UUID, page commonDto.PageQuery) (*dto.BillListResponse, error)
	GetBillServices(ctx context.Context, userID uuid.UUID, billID uint) ([]entity.Service, error)
	CreateBill(ctx context.Context, input dto.CreateBillInput) (*entity.Bill, error)
	CreatePayment(ctx context.Context, billID uint, input dto.CreatePaymentInput) (*entity.Payment, error)
	GetPayments(ctx context.Context, userID uuid.UUID, query dto.PaymentQuery) (*dto.PaymentListResponse, error)
	GetPayment(ctx context.Context, userID uuid.UUID, id uint) (*entity.Payment, error)
	SubmitProof(ctx context.Context, userID uuid.UUID, paymentID uint, image *commonDto.ImageFile) (*entity.Payment, error)
}

type billingService struct {
	repo         repository.BillingRepository
	imageStorage storage.ImageStorage
	notification notifService.NotificationService
}

func NewBillingService(repo repository.BillingRepository, imageStorage storage.ImageStorage, notification notifService.NotificationService) BillingService {
	return &billingService{
		repo:         repo,
		imageStorage: imageStorage,
		notification: notification,
	}
}

func (s *billingService) GetServices(ctx context.Context, nameFilter string) ([]entity.Service, error) {
	return s.repo.FindServices(ctx, nameFilter)
}

func (s *billingService) GetBills(ctx context.Context, userID uuid.UUID, page commonDto.PageQuery) (*dto.BillListResponse, error) {
	bills, total, err := s.repo.FindBillsByUserID(ctx, userID, page.Offset(commonDto.WorkflowPageSize), commonDto.WorkflowPageSize)
	if err != nil {
		return nil, err
	}

	data := make([]dto.BillResponse, 0, len(bills))
	for _, bill := range bills {
		data = append(data, dto.BillResponse{
			Bill:        bill,
			TotalAmount: bill.TotalAmount(),
		})
	}

	return &dto.BillListResponse{
		Data: data,
		Meta: commonDto.NewPaginationMeta(page.Page, commonDto.WorkflowPageSize, total),
	}, nil
}

func (s *billingService) GetBillServices(ctx context.Context, userID uuid.UUID, billID uint) ([]entity.Service, error) {
	bill, err := s.repo.FindBillByID(ctx, billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bill not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if bill.UserID != userID {
		return nil, fmt.Errorf("bill belongs to another resident: %w", apperror.ErrForbidden)
	}

	services := make([]entity.Service, 0, len(bill.Services))
	for _, svc := range bill.Services {
		if svc.Active {
			services = append(services, svc)
		}
	}

	return services, nil
}

func (s *billingService) CreateBill(ctx context.Context, input dto.CreateBillInput) (*entity.Bill, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", apperror.ErrInvalidInput)
	}

	services, err := s.repo.FindServicesByIDs(ctx, input.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(input.ServiceIDs) {
		return nil, fmt.Errorf("one or more services not found: %w", apperror.ErrInvalidInput)
	}

	billDate := input.BillDate
	if billDate.IsZero() {
		billDate = time.Now()
	}

	bill := &entity.Bill{
		Name:          input.Name,
		UserID:        userID,
		BillDate:      billDate,
		PaymentMethod: entity.PaymentMethod(input.PaymentMethod),
		Services:      services,
		Active:        true,
	}

	if err := s.repo.CreateBill(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// CreatePayment opens a pending payment for a bill. The payment's user ref is
// always copied from the bill, never taken from the request.
func (s *billingService) CreatePayment(ctx context.Context, billID uint, input dto.CreatePaymentInput) (*entity.Payment, error) {
	bill, err := s.repo.FindBillByID(ctx, billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bill not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	payment := &entity.Payment{
		BillID:        bill.ID,
		UserID:        bill.UserID,
		Status:        entity.PaymentPending,
		Amount:        input.Amount,
		TransactionID: uuid.NewString(),
		PaymentDate:   time.Now(),
		Active:        true,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (s *billingService) GetPayments(ctx context.Context, userID uuid.UUID, query dto.PaymentQuery) (*dto.PaymentListResponse, error) {
	page := commonDto.PageQuery{Page: query.Page}
	payments, total, err := s.repo.FindPaymentsByUserID(ctx, userID, query.Status, page.Offset(commonDto.WorkflowPageSize), commonDto.WorkflowPageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentListResponse{
		Data: payments,
		Meta: commonDto.NewPaginationMeta(page.Page, commonDto.WorkflowPageSize, total),
	}, nil
}

func (s *billingService) GetPayment(ctx context.Context, userID uuid.UUID, id uint) (*entity.Payment, error) {
	payment, err := s.repo.FindPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if payment.UserID != userID {
		return nil, fmt.Errorf("payment belongs to another resident: %w", apperror.ErrForbidden)
	}

	return payment, nil
}

// SubmitProof attaches the proof-of-transfer image and moves the payment from
// pending to pass. Pass is terminal; there is no reject transition.
func (s *billingService) SubmitProof(ctx context.Context, userID uuid.UUID, paymentID uint, image *commonDto.ImageFile) (*entity.Payment, error) {
	payment, err := s.repo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if payment.UserID != userID {
		return nil, fmt.Errorf("payment belongs to another resident: %w", apperror.ErrForbidden)
	}

	if image == nil || image.Reader == nil {
		return nil, fmt.Errorf("proof image is required: %w", apperror.ErrInvalidInput)
	}

	url, err := s.imageStorage.UploadImage(ctx, image.Reader, "payment_proofs", image.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to upload proof image: %w", err)
	}

	payment.ProofImageURL = &url
	payment.Status = entity.PaymentPassed

	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if s.notification != nil {
		message := fmt.Sprintf("Payment #%d has been confirmed", payment.ID)
		if err := s.notification.Notify(ctx, payment.UserID, "payment", payment.ID, "payment_passed", message); err != nil {
			log.Printf("failed to send payment notification: %v", err)
		}
	}

	return payment, nil
}
