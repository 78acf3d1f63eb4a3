package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// blackout_dates
//
// A date the creator has closed for the whole newsletter regardless of what
// the publication schedule says.
type BlackoutDate struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	NewsletterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blackout_newsletter_date"`

	Date datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_blackout_newsletter_date"`

	Note string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`

	Newsletter *Newsletter `gorm:"foreignKey:NewsletterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
