package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
	"github.com/Sponsra/sponsra-app-sub000/internal/repository"
	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
)

// AvailabilityService computes bookable dates for tiers and the publication
// calendar for newsletters. It only fetches rows and hands them to the pure
// engine; all date logic lives in internal/schedule.
type AvailabilityService struct {
	tierRepo     repository.TierRepository
	scheduleRepo repository.ScheduleRepository
	blackoutRepo repository.BlackoutRepository
	bookingRepo  repository.BookingRepository
}

func NewAvailabilityService(
	tierRepo repository.TierRepository,
	scheduleRepo repository.ScheduleRepository,
	blackoutRepo repository.BlackoutRepository,
	bookingRepo repository.BookingRepository,
) *AvailabilityService {
	return &AvailabilityService{
		tierRepo:     tierRepo,
		scheduleRepo: scheduleRepo,
		blackoutRepo: blackoutRepo,
		bookingRepo:  bookingRepo,
	}
}

// ResolveTier classifies every date in rng for booking against the tier.
// A missing tier or missing schedule configuration yields an empty list:
// absence of configuration must read as "nothing available", not as an
// error and certainly not as "everything is open".
func (s *AvailabilityService) ResolveTier(
	ctx context.Context,
	tierID string,
	rng schedule.DateRange,
) ([]schedule.DayAvailability, error) {
	tier, err := s.tierRepo.GetByID(ctx, tierID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []schedule.DayAvailability{}, nil
		}
		return nil, fmt.Errorf("fetch tier: %w", err)
	}

	blackouts, err := s.blackoutSet(ctx, tier.NewsletterID.String(), rng)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookedSet(ctx, tierID, rng)
	if err != nil {
		return nil, err
	}

	switch tier.AvailabilityMode {
	case model.AvailabilityModeInherit:
		return s.resolveBySchedule(ctx, scheduleOwnerNewsletter, tier.NewsletterID.String(), blackouts, booked, rng)
	case model.AvailabilityModeCustom:
		return s.resolveBySchedule(ctx, scheduleOwnerTier, tierID, blackouts, booked, rng)
	default:
		// Weekday-gated tier: the simple legacy constraint used by the
		// booking flow. Not the same code path as schedule matching.
		return schedule.ResolveAvailability(tier.AllowedWeekdays(), blackouts, booked, rng), nil
	}
}

// PublicationCalendar classifies the newsletter's publication dates in rng
// for the calendar/preview UI. A newsletter without a schedule yields an
// empty list.
func (s *AvailabilityService) PublicationCalendar(
	ctx context.Context,
	newsletterID string,
	rng schedule.DateRange,
) ([]schedule.DayAvailability, error) {
	blackouts, err := s.blackoutSet(ctx, newsletterID, rng)
	if err != nil {
		return nil, err
	}
	return s.resolveBySchedule(ctx, scheduleOwnerNewsletter, newsletterID, blackouts, schedule.NewDateSet(), rng)
}

type scheduleOwner int

const (
	scheduleOwnerNewsletter scheduleOwner = iota
	scheduleOwnerTier
)

func (s *AvailabilityService) resolveBySchedule(
	ctx context.Context,
	owner scheduleOwner,
	ownerID string,
	blackouts, booked schedule.DateSet,
	rng schedule.DateRange,
) ([]schedule.DayAvailability, error) {
	var (
		rec *model.ScheduleRecord
		err error
	)
	if owner == scheduleOwnerTier {
		rec, err = s.scheduleRepo.GetByTier(ctx, ownerID)
	} else {
		rec, err = s.scheduleRepo.GetByNewsletter(ctx, ownerID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []schedule.DayAvailability{}, nil
		}
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	sched, err := rec.ToSchedule()
	if err != nil {
		return nil, err
	}

	return schedule.ResolveScheduleDates(sched, blackouts, booked, rng), nil
}

func (s *AvailabilityService) blackoutSet(ctx context.Context, newsletterID string, rng schedule.DateRange) (schedule.DateSet, error) {
	rows, err := s.blackoutRepo.ListByNewsletterRange(ctx, newsletterID, rng.Start.Time(), rng.End.Time())
	if err != nil {
		return nil, fmt.Errorf("fetch blackouts: %w", err)
	}
	set := schedule.NewDateSet()
	for _, b := range rows {
		set.Add(schedule.DateOf(time.Time(b.Date)))
	}
	return set, nil
}

func (s *AvailabilityService) bookedSet(ctx context.Context, tierID string, rng schedule.DateRange) (schedule.DateSet, error) {
	dates, err := s.bookingRepo.BookedDates(ctx, tierID, rng.Start.Time(), rng.End.Time())
	if err != nil {
		return nil, fmt.Errorf("fetch booked dates: %w", err)
	}
	set := schedule.NewDateSet()
	for _, t := range dates {
		set.Add(schedule.DateOf(t))
	}
	return set, nil
}
