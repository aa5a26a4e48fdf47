package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	EntityID   uint      `gorm:"not null" json:"entity_id"`
	EntityType string    `gorm:"type:varchar(50);not null" json:"entity_type"` // 'package', 'payment', 'resident_family'
	Type       string    `gorm:"type:varchar(50);not null" json:"type"`        // 'package_arrived', 'payment_passed', 'family_approved'
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
