package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// bookings
//
// The unique index on (tier_id, run_date) is the arbiter when two sponsors
// race for the same date: the second insert fails and the caller retries
// against freshly computed availability.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	TierID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_booking_tier_run_date"`
	SponsorID uuid.UUID `gorm:"type:uuid;not null;index"`

	RunDate datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_booking_tier_run_date"`

	Status BookingStatus `gorm:"type:varchar(32);not null;default:'pending';index"`

	AmountCents int64 `gorm:"not null;default:0"`

	// Creative submitted by the sponsor; stored externally, referenced here.
	CreativeURL string `gorm:"type:varchar(1024)"`
	Notes       string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Tier    *SponsorshipTier `gorm:"foreignKey:TierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Sponsor *Sponsor         `gorm:"foreignKey:SponsorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
