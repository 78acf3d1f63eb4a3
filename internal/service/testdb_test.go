package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Minimal sqlite-friendly schema (the production DDL uses postgres uuid
	// defaults that sqlite cannot evaluate).
	schema := []string{
		`CREATE TABLE creators (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			display_name TEXT,
			stripe_account_id TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE sponsors (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			company_name TEXT,
			website TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE newsletters (
			id TEXT PRIMARY KEY,
			creator_id TEXT NOT NULL,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT,
			subscriber_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE sponsorship_tiers (
			id TEXT PRIMARY KEY,
			newsletter_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			price_cents INTEGER NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'usd',
			position INTEGER NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT 1,
			availability_mode TEXT NOT NULL DEFAULT 'weekdays',
			available_days TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE schedule_records (
			id TEXT PRIMARY KEY,
			newsletter_id TEXT,
			tier_id TEXT,
			schedule_type TEXT NOT NULL,
			pattern_type TEXT,
			days_of_week TEXT,
			day_of_month INTEGER,
			monthly_week_number INTEGER,
			start_date DATE,
			end_date DATE,
			specific_dates TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE blackout_dates (
			id TEXT PRIMARY KEY,
			newsletter_id TEXT NOT NULL,
			date DATE NOT NULL,
			note TEXT,
			created_at DATETIME,
			UNIQUE (newsletter_id, date)
		);`,
		`CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			tier_id TEXT NOT NULL,
			sponsor_id TEXT NOT NULL,
			run_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			amount_cents INTEGER NOT NULL DEFAULT 0,
			creative_url TEXT,
			notes TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (tier_id, run_date)
		);`,
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func seedNewsletter(t *testing.T, db *gorm.DB) *model.Newsletter {
	t.Helper()

	n := &model.Newsletter{
		ID:        uuid.New(),
		CreatorID: uuid.New(),
		Name:      "Dispatch Weekly",
		Slug:      "dispatch-weekly",
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("seed newsletter: %v", err)
	}
	return n
}

func seedTier(t *testing.T, db *gorm.DB, newsletterID uuid.UUID, mode model.AvailabilityMode, availableDays string) *model.SponsorshipTier {
	t.Helper()

	tier := &model.SponsorshipTier{
		ID:               uuid.New(),
		NewsletterID:     newsletterID,
		Name:             "Main Sponsor",
		PriceCents:       50000,
		Currency:         "usd",
		Active:           true,
		AvailabilityMode: mode,
	}
	if availableDays != "" {
		tier.AvailableDays = datatypes.JSON(availableDays)
	}
	if err := db.Create(tier).Error; err != nil {
		t.Fatalf("seed tier: %v", err)
	}
	return tier
}

func seedBlackout(t *testing.T, db *gorm.DB, newsletterID uuid.UUID, day time.Time) {
	t.Helper()

	b := &model.BlackoutDate{
		ID:           uuid.New(),
		NewsletterID: newsletterID,
		Date:         datatypes.Date(day),
		Note:         "holiday",
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed blackout: %v", err)
	}
}

func seedBooking(t *testing.T, db *gorm.DB, tierID uuid.UUID, day time.Time) {
	t.Helper()

	b := &model.Booking{
		ID:        uuid.New(),
		TierID:    tierID,
		SponsorID: uuid.New(),
		RunDate:   datatypes.Date(day),
		Status:    model.BookingStatusConfirmed,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
}

func utcDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustDate(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := schedule.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return datatypes.Date(d.Time())
}
