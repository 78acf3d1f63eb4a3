package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
	"github.com/Sponsra/sponsra-app-sub000/internal/repository"
	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
)

// ErrDateNotAvailable is returned when the requested run date is not
// currently available for the tier. The reason field carries the
// user-facing explanation ("Sold Out", "Date Closed", ...).
var ErrDateNotAvailable = errors.New("service: date not available")

// BookRequest is a sponsor's request to book one run date on a tier.
type BookRequest struct {
	TierID      string
	SponsorID   string
	RunDate     string // YYYY-MM-DD
	AmountCents int64
	CreativeURL string
	Notes       string
}

// BookingService creates bookings against freshly computed availability.
type BookingService struct {
	availability *AvailabilityService
	bookingRepo  repository.BookingRepository
}

func NewBookingService(availability *AvailabilityService, bookingRepo repository.BookingRepository) *BookingService {
	return &BookingService{availability: availability, bookingRepo: bookingRepo}
}

// Book checks availability for the requested date and inserts the booking.
// Two failure modes matter to callers:
//   - ErrDateNotAvailable: the date was not available at check time;
//   - repository.ErrDateAlreadyBooked: a concurrent sponsor won the insert
//     race; retry against freshly recomputed availability.
func (s *BookingService) Book(ctx context.Context, req BookRequest) (*model.Booking, error) {
	runDate, err := schedule.ParseDate(req.RunDate)
	if err != nil {
		return nil, err
	}

	tierID, err := uuid.Parse(req.TierID)
	if err != nil {
		return nil, fmt.Errorf("parse tier id: %w", err)
	}
	sponsorID, err := uuid.Parse(req.SponsorID)
	if err != nil {
		return nil, fmt.Errorf("parse sponsor id: %w", err)
	}

	days, err := s.availability.ResolveTier(ctx, req.TierID, schedule.DateRange{Start: runDate, End: runDate})
	if err != nil {
		return nil, err
	}
	if !dateAvailable(days, runDate) {
		return nil, ErrDateNotAvailable
	}

	booking := &model.Booking{
		ID:          uuid.New(),
		TierID:      tierID,
		SponsorID:   sponsorID,
		RunDate:     datatypes.Date(runDate.Time()),
		Status:      model.BookingStatusPending,
		AmountCents: req.AmountCents,
		CreativeURL: req.CreativeURL,
		Notes:       req.Notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func dateAvailable(days []schedule.DayAvailability, d schedule.Date) bool {
	for _, day := range days {
		if day.Date == d {
			return day.Status == schedule.StatusAvailable
		}
	}
	// The resolver returned nothing for the date: tier or schedule missing.
	return false
}
