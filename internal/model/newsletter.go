package model

import (
	"time"

	"github.com/google/uuid"
)

// newsletters
type Newsletter struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	CreatorID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`

	SubscriberCount int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Creator *Creator `gorm:"foreignKey:CreatorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Tiers []SponsorshipTier `gorm:"foreignKey:NewsletterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Publication schedule; a newsletter has at most one.
	Schedule *ScheduleRecord `gorm:"foreignKey:NewsletterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
