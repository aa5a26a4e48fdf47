package entity

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type PaymentMethod string

const (
	PaymentMethodMomo  PaymentMethod = "momo"
	PaymentMethodVNPay PaymentMethod = "vnpay"
)

type Bill struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"size:50" json:"name"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User         `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	BillDate      time.Time     `json:"bill_date"`
	PaymentMethod PaymentMethod `gorm:"size:20;not null;default:momo" json:"payment_method"`
	Services      []Service     `gorm:"many2many:bill_services" json:"services,omitempty"`
	Active        bool          `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// TotalAmount sums the prices of the linked services. The total is always
// computed from the current rows, never stored.
func (b *Bill) TotalAmount() float64 {
	var total float64
	for _, svc := range b.Services {
		total += svc.Price
	}
	return total
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPassed  PaymentStatus = "pass"
)

type Payment struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	BillID uint  `gorm:"not null;index" json:"bill_id"`
	Bill   *Bill `gorm:"constraint:OnDelete:CASCADE" json:"bill,omitempty"`
	// UserID is a denormalized copy of the bill's owner, set from the bill at
	// create time. It must always equal Bill.UserID.
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Status        PaymentStatus `gorm:"size:20;not null;default:pending" json:"status"`
	Amount        float64       `gorm:"not null" json:"amount"`
	ProofImageURL *string       `gorm:"type:text" json:"proof_image_url,omitempty"`
	TransactionID string        `gorm:"size:100" json:"transaction_id"`
	PaymentDate   time.Time     `gorm:"autoCreateTime" json:"payment_date"`
	Active        bool          `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}
