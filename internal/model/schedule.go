package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
)

// schedule_records
//
// One row per owner: NewsletterID set for a publication schedule, TierID set
// for a tier availability schedule. Dates are stored as plain dates and the
// array fields as JSON, matching what the settings UI submits.
type ScheduleRecord struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	NewsletterID *uuid.UUID `gorm:"type:uuid;index"`
	TierID       *uuid.UUID `gorm:"type:uuid;index"`

	ScheduleType string  `gorm:"type:varchar(32);not null"`
	PatternType  *string `gorm:"type:varchar(32)"`

	// JSON array of weekday numbers (0 = Sunday).
	DaysOfWeek datatypes.JSON `gorm:"type:jsonb"`

	DayOfMonth        *int
	MonthlyWeekNumber *int

	StartDate *datatypes.Date `gorm:"type:date"`
	EndDate   *datatypes.Date `gorm:"type:date"`

	// JSON array of YYYY-MM-DD strings.
	SpecificDates datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

// ToSchedule converts the stored row into an engine schedule value.
func (r *ScheduleRecord) ToSchedule() (schedule.Schedule, error) {
	s := schedule.Schedule{Type: schedule.Type(r.ScheduleType)}

	if r.PatternType != nil {
		s.Pattern = schedule.Pattern(*r.PatternType)
	}
	if r.DayOfMonth != nil {
		s.DayOfMonth = *r.DayOfMonth
	}
	if r.MonthlyWeekNumber != nil {
		s.MonthlyWeekNumber = *r.MonthlyWeekNumber
	}

	if len(r.DaysOfWeek) > 0 {
		if err := json.Unmarshal(r.DaysOfWeek, &s.DaysOfWeek); err != nil {
			return schedule.Schedule{}, fmt.Errorf("schedule record %s: days_of_week: %w", r.ID, err)
		}
	}

	if r.StartDate != nil {
		d := schedule.DateOf(time.Time(*r.StartDate))
		s.Start = &d
	}
	if r.EndDate != nil {
		d := schedule.DateOf(time.Time(*r.EndDate))
		s.End = &d
	}

	if len(r.SpecificDates) > 0 {
		var raw []string
		if err := json.Unmarshal(r.SpecificDates, &raw); err != nil {
			return schedule.Schedule{}, fmt.Errorf("schedule record %s: specific_dates: %w", r.ID, err)
		}
		for _, v := range raw {
			d, err := schedule.ParseDate(v)
			if err != nil {
				return schedule.Schedule{}, fmt.Errorf("schedule record %s: %w", r.ID, err)
			}
			s.SpecificDates = append(s.SpecificDates, d)
		}
	}

	return s, nil
}

// ApplySchedule writes an engine schedule value back onto the row, leaving
// owner references and timestamps alone.
func (r *ScheduleRecord) ApplySchedule(s schedule.Schedule) error {
	r.ScheduleType = string(s.Type)

	r.PatternType = nil
	if s.Pattern != "" {
		p := string(s.Pattern)
		r.PatternType = &p
	}

	r.DayOfMonth = nil
	if s.DayOfMonth != 0 {
		v := s.DayOfMonth
		r.DayOfMonth = &v
	}
	r.MonthlyWeekNumber = nil
	if s.MonthlyWeekNumber != 0 {
		v := s.MonthlyWeekNumber
		r.MonthlyWeekNumber = &v
	}

	r.DaysOfWeek = nil
	if len(s.DaysOfWeek) > 0 {
		buf, err := json.Marshal(s.DaysOfWeek)
		if err != nil {
			return fmt.Errorf("marshal days_of_week: %w", err)
		}
		r.DaysOfWeek = datatypes.JSON(buf)
	}

	r.StartDate = nil
	if s.Start != nil {
		d := datatypes.Date(s.Start.Time())
		r.StartDate = &d
	}
	r.EndDate = nil
	if s.End != nil {
		d := datatypes.Date(s.End.Time())
		r.EndDate = &d
	}

	r.SpecificDates = nil
	if len(s.SpecificDates) > 0 {
		raw := make([]string, 0, len(s.SpecificDates))
		for _, d := range s.SpecificDates {
			raw = append(raw, d.String())
		}
		buf, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("marshal specific_dates: %w", err)
		}
		r.SpecificDates = datatypes.JSON(buf)
	}

	return nil
}
