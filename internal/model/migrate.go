package model

import "gorm.io/gorm"

// AutoMigrate migrates every entity of the marketplace scheduling core.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Creator{},
		&Sponsor{},
		&Newsletter{},
		&SponsorshipTier{},
		&ScheduleRecord{},
		&BlackoutDate{},
		&Booking{},
	)
}
