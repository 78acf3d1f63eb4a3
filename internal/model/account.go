package model

import (
	"time"

	"github.com/google/uuid"
)

// Creator is a newsletter author selling sponsorship inventory.
// Authentication lives in the hosted auth service; this row only carries
// what the marketplace needs to render and attribute inventory.
type Creator struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string `gorm:"type:varchar(255);not null"`

	// Stripe Connect account for payout routing; managed externally.
	StripeAccountID string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Newsletters []Newsletter `gorm:"foreignKey:CreatorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Sponsor is an advertiser booking sponsorship slots.
type Sponsor struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	CompanyName string `gorm:"type:varchar(255);not null"`
	Website     string `gorm:"type:varchar(512)"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}
