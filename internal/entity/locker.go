package entity

import "time"

// Locker is a per-resident storage slot that accumulates delivered packages.
type Locker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50" json:"name"`
	Packages  []Package `gorm:"constraint:OnDelete:CASCADE" json:"packages,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type PackageStatus string

const (
	PackageWaiting  PackageStatus = "waiting"
	PackageReceived PackageStatus = "received"
)

// ValidPackageStatus reports whether s is one of the two package states.
func ValidPackageStatus(s PackageStatus) bool {
	return s == PackageWaiting || s == PackageReceived
}

type Package struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"size:50" json:"name"`
	LockerID  uint          `gorm:"not null;index" json:"locker_id"`
	Locker    *Locker       `json:"locker,omitempty"`
	Status    PackageStatus `gorm:"size:20;not null;default:waiting" json:"status"`
	Active    bool          `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}
