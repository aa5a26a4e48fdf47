package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleResident Role = "resident"
)

// DeriveRole projects the superuser flag onto the stored role. The role column
// is never trusted from client input; it is recomputed on every save.
func DeriveRole(isSuperuser bool) Role {
	if isSuperuser {
		return RoleAdmin
	}
	return RoleResident
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	AvatarURL    *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	IsSuperuser  bool      `gorm:"not null;default:false" json:"is_superuser"`
	Role         Role      `gorm:"size:20;not null;default:resident" json:"role"`
	LockerID     *uint     `json:"locker_id,omitempty"`
	Locker       *Locker   `gorm:"constraint:OnDelete:SET NULL" json:"locker,omitempty"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Role = DeriveRole(u.IsSuperuser)
	return nil
}
