package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AvailabilityMode says which constraint system gates a tier's bookable dates.
type AvailabilityMode string

const (
	// AvailabilityModeWeekdays gates by the tier's AvailableDays weekday set.
	AvailabilityModeWeekdays AvailabilityMode = "weekdays"
	// AvailabilityModeInherit defers to the newsletter's publication schedule.
	AvailabilityModeInherit AvailabilityMode = "inherit"
	// AvailabilityModeCustom uses the tier's own schedule record.
	AvailabilityModeCustom AvailabilityMode = "custom"
)

// sponsorship_tiers
type SponsorshipTier struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	NewsletterID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	PriceCents int64  `gorm:"not null;default:0"`
	Currency   string `gorm:"type:varchar(8);not null;default:'usd'"`
	Position   int    `gorm:"not null;default:0"`
	Active     bool   `gorm:"not null;default:true"`

	AvailabilityMode AvailabilityMode `gorm:"type:varchar(32);not null;default:'weekdays'"`

	// AvailableDays is a JSON array of weekday numbers (0 = Sunday).
	// Empty means the Mon-Fri default.
	AvailableDays datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Newsletter *Newsletter `gorm:"foreignKey:NewsletterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Availability schedule for AvailabilityModeCustom; at most one.
	Schedule *ScheduleRecord `gorm:"foreignKey:TierID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// AllowedWeekdays decodes AvailableDays. Nil (let the resolver apply its
// Mon-Fri default) when unset or unreadable.
func (t *SponsorshipTier) AllowedWeekdays() []int {
	if len(t.AvailableDays) == 0 {
		return nil
	}
	var days []int
	if err := json.Unmarshal(t.AvailableDays, &days); err != nil {
		return nil
	}
	return days
}
