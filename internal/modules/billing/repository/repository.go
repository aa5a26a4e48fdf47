package repository

import (
	"context"

	"anphu.vn/residencehub/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingRepository interface {
	FindServices(ctx context.Context, nameFilter string) ([]entity.Service, error)
	FindServicesByIDs(ctx context.Context, ids []uint) ([]entity.Service, error)
	CreateBill(ctx context.Context, bill *entity.Bill) error
	FindBillByID(ctx context.Context, id uint) (*entity.Bill, error)
	FindBillsByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.Bill, int64, error)
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	FindPaymentByID(ctx context.Context, id uint) (*entity.Payment, error)
	FindPaymentsByUserID(ctx context.Context, userID uuid.UUID, status string, offset, limit int) ([]entity.Payment, int64, error)
	UpdatePayment(ctx context.Context, payment *entity.Payment) error
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) FindServices(ctx context.Context, nameFilter string) ([]entity.Service, error) {
	var services []entity.Service
	query := r.db.WithContext(ctx).Where("active = ?", true)
	if nameFilter != "" {
		query = query.Where("name ILIKE ?", "%"+nameFilter+"%")
	}
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *billingRepository) FindServicesByIDs(ctx context.Context, ids []uint) ([]entity.Service, error) {
	var services []entity.Service
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *billingRepository) CreateBill(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billingRepository) FindBillByID(ctx context.Context, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&bill, id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billingRepository) FindBillsByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Preload("Services").
		Order("bill_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

func (r *billingRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *billingRepository) FindPaymentByID(ctx context.Context, id uint) (*entity.Payment, error) {
	var payment entity.Payment
	if err := r.db.WithContext(ctx).
		Preload("Bill").
		First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *billingRepository) FindPaymentsByUserID(ctx context.Context, userID uuid.UUID, status string, offset, limit int) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	countQuery := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Where("user_id = ? AND active = ?", userID, true)
	listQuery := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true)
	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
		listQuery = listQuery.Where("status = ?", status)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := listQuery.
		Order("payment_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *billingRepository) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
