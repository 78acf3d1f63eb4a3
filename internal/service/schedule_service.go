package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
	"github.com/Sponsra/sponsra-app-sub000/internal/repository"
	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
)

// ErrInvalidSchedule is returned by the save paths when the draft fails
// validation; the accompanying ValidationResult carries the messages.
var ErrInvalidSchedule = errors.New("service: schedule failed validation")

// ScheduleService validates, persists and previews schedule definitions.
type ScheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// Validate checks a draft schedule. Pure; safe to call before every save.
func (s *ScheduleService) Validate(sched schedule.Schedule) schedule.ValidationResult {
	return sched.Validate()
}

// Preview returns up to count upcoming dates as YYYY-MM-DD strings.
func (s *ScheduleService) Preview(sched schedule.Schedule, from schedule.Date, count int) []string {
	dates := schedule.PreviewDates(sched, from, count)
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}

// Describe renders the one-line schedule phrase for the settings UI.
func (s *ScheduleService) Describe(sched schedule.Schedule) string {
	return schedule.Describe(sched)
}

// SaveNewsletterSchedule validates and persists the newsletter's publication
// schedule. On validation failure the result is returned together with
// ErrInvalidSchedule and nothing is written.
func (s *ScheduleService) SaveNewsletterSchedule(
	ctx context.Context,
	newsletterID string,
	sched schedule.Schedule,
) (schedule.ValidationResult, error) {
	result := sched.Validate()
	if !result.Valid {
		return result, ErrInvalidSchedule
	}

	id, err := uuid.Parse(newsletterID)
	if err != nil {
		return result, fmt.Errorf("parse newsletter id: %w", err)
	}

	rec := &model.ScheduleRecord{NewsletterID: &id}
	if err := rec.ApplySchedule(sched); err != nil {
		return result, err
	}
	if err := s.scheduleRepo.UpsertForNewsletter(ctx, newsletterID, rec); err != nil {
		return result, fmt.Errorf("save newsletter schedule: %w", err)
	}
	return result, nil
}

// SaveTierSchedule validates and persists a tier's availability schedule.
func (s *ScheduleService) SaveTierSchedule(
	ctx context.Context,
	tierID string,
	sched schedule.Schedule,
) (schedule.ValidationResult, error) {
	result := sched.Validate()
	if !result.Valid {
		return result, ErrInvalidSchedule
	}

	id, err := uuid.Parse(tierID)
	if err != nil {
		return result, fmt.Errorf("parse tier id: %w", err)
	}

	rec := &model.ScheduleRecord{TierID: &id}
	if err := rec.ApplySchedule(sched); err != nil {
		return result, err
	}
	if err := s.scheduleRepo.UpsertForTier(ctx, tierID, rec); err != nil {
		return result, fmt.Errorf("save tier schedule: %w", err)
	}
	return result, nil
}

// NewsletterSchedule loads the newsletter's publication schedule.
// repository.ErrNotFound passes through for the caller to map.
func (s *ScheduleService) NewsletterSchedule(ctx context.Context, newsletterID string) (schedule.Schedule, error) {
	rec, err := s.scheduleRepo.GetByNewsletter(ctx, newsletterID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	return rec.ToSchedule()
}
