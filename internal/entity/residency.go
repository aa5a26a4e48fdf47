package entity

import (
	"time"

	"github.com/google/uuid"
)

type FamilyStatus string

const (
	FamilyPending FamilyStatus = "pending"
	FamilyPassed  FamilyStatus = "pass"
)

// ResidentFamily is a registered family member or visitor of a resident.
type ResidentFamily struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User        `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Name       string       `gorm:"size:50" json:"name"`
	NationalID string       `gorm:"size:50;uniqueIndex;not null" json:"national_id"`
	Phone      string       `gorm:"size:15" json:"phone"`
	Status     FamilyStatus `gorm:"size:10;not null;default:pending" json:"status"`
	AccessCard *AccessCard  `gorm:"constraint:OnDelete:CASCADE" json:"access_card,omitempty"`
	Active     bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// AccessCard is issued 1:1 to an approved ResidentFamily record.
type AccessCard struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ResidentFamilyID uint      `gorm:"not null;uniqueIndex" json:"resident_family_id"`
	Active           bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ApartmentType string

const (
	ApartmentLuxury    ApartmentType = "1"
	ApartmentMidRange  ApartmentType = "2"
	ApartmentStandard  ApartmentType = "3"
	ApartmentStudio    ApartmentType = "4"
	ApartmentOfficetel ApartmentType = "5"
)

type Apartment struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	UserID     *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User       *User         `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Floor      string        `gorm:"type:text" json:"floor"`
	UnitNumber string        `gorm:"size:255" json:"unit_number"`
	Type       ApartmentType `gorm:"size:20;not null;default:1" json:"type"`
	Active     bool          `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

type Contract struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:50" json:"name"`
	Body        string     `gorm:"type:text" json:"body"`
	ApartmentID uint       `gorm:"not null;index" json:"apartment_id"`
	Apartment   *Apartment `gorm:"constraint:OnDelete:CASCADE" json:"apartment,omitempty"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Deposit     float64    `json:"deposit"`
	Active      bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
