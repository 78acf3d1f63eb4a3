package api

import (
	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
)

// scheduleRequest is the wire shape of a schedule definition, as submitted
// by the settings UI. Dates travel as YYYY-MM-DD strings.
type scheduleRequest struct {
	ScheduleType      string   `json:"schedule_type"`
	PatternType       string   `json:"pattern_type,omitempty"`
	DaysOfWeek        []int    `json:"days_of_week,omitempty"`
	DayOfMonth        int      `json:"day_of_month,omitempty"`
	MonthlyWeekNumber int      `json:"monthly_week_number,omitempty"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	SpecificDates     []string `json:"specific_dates,omitempty"`
}

func (r scheduleRequest) toSchedule() (schedule.Schedule, error) {
	s := schedule.Schedule{
		Type:              schedule.Type(r.ScheduleType),
		Pattern:           schedule.Pattern(r.PatternType),
		DaysOfWeek:        r.DaysOfWeek,
		DayOfMonth:        r.DayOfMonth,
		MonthlyWeekNumber: r.MonthlyWeekNumber,
	}

	if r.StartDate != "" {
		d, err := schedule.ParseDate(r.StartDate)
		if err != nil {
			return schedule.Schedule{}, err
		}
		s.Start = &d
	}
	if r.EndDate != "" {
		d, err := schedule.ParseDate(r.EndDate)
		if err != nil {
			return schedule.Schedule{}, err
		}
		s.End = &d
	}
	for _, raw := range r.SpecificDates {
		d, err := schedule.ParseDate(raw)
		if err != nil {
			return schedule.Schedule{}, err
		}
		s.SpecificDates = append(s.SpecificDates, d)
	}

	return s, nil
}

func scheduleResponse(s schedule.Schedule) scheduleRequest {
	out := scheduleRequest{
		ScheduleType:      string(s.Type),
		PatternType:       string(s.Pattern),
		DaysOfWeek:        s.DaysOfWeek,
		DayOfMonth:        s.DayOfMonth,
		MonthlyWeekNumber: s.MonthlyWeekNumber,
	}
	if s.Start != nil {
		out.StartDate = s.Start.String()
	}
	if s.End != nil {
		out.EndDate = s.End.String()
	}
	for _, d := range s.SpecificDates {
		out.SpecificDates = append(out.SpecificDates, d.String())
	}
	return out
}

// dayResponse is one availability decision on the wire.
type dayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func dayResponses(days []schedule.DayAvailability) []dayResponse {
	out := make([]dayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, dayResponse{
			Date:   d.Date.String(),
			Status: string(d.Status),
			Reason: d.Reason,
		})
	}
	return out
}
