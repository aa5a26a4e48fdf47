package dto

import (
	"time"

	"anphu.vn/residencehub/internal/entity"
	commonDto "anphu.vn/residencehub/pkg/dto"
)

type CreateBillInput struct {
	Name          string    `json:"name" binding:"required,min=2,max=50"`
	UserID        string    `json:"user_id" binding:"required,uuid"`
	BillDate      time.Time `json:"bill_date"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=momo vnpay"`
	ServiceIDs    []uint    `json:"service_ids" binding:"required,min=1"`
}

type CreatePaymentInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type PaymentQuery struct {
	Page   int    `form:"page"`
	Status string `form:"status" binding:"omitempty,oneof=pending pass"`
}

// BillResponse carries the computed total alongside the bill row.
type BillResponse struct {
	entity.Bill
	TotalAmount float64 `json:"total_amount"`
}

type BillListResponse struct {
	Data []BillResponse           `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}

type PaymentListResponse struct {
	Data []entity.Payment         `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
