package schedule

import "fmt"

// ValidationResult reports every rule a schedule violates so the settings UI
// can show all problems at once.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks the schedule's internal consistency before it is persisted.
// It accumulates one message per violated rule and never panics.
func (s Schedule) Validate() ValidationResult {
	var errs []string

	switch s.Type {
	case TypeRecurring:
		errs = append(errs, s.validateRecurring()...)
	case TypeOneOff:
		if len(s.SpecificDates) == 0 {
			errs = append(errs, "at least one date is required for a one-off schedule")
		}
	case TypeAllDates:
		errs = append(errs, s.validateBounds()...)
	default:
		errs = append(errs, fmt.Sprintf("unknown schedule type %q", string(s.Type)))
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func (s Schedule) validateRecurring() []string {
	var errs []string

	if s.Pattern == "" {
		errs = append(errs, "pattern type is required for a recurring schedule")
	}
	if s.Start == nil {
		errs = append(errs, "start date is required for a recurring schedule")
	}
	errs = append(errs, s.validateBounds()...)

	switch s.Pattern {
	case PatternWeekly, PatternBiweekly, PatternMonthlyDay, PatternCustom:
		if len(s.DaysOfWeek) == 0 {
			errs = append(errs, "at least one day of week must be selected")
		}
	case PatternMonthlyDate:
		if s.DayOfMonth < 1 || s.DayOfMonth > 31 {
			errs = append(errs, "day of month must be between 1 and 31")
		}
	}

	if s.Pattern == PatternMonthlyDay {
		if s.MonthlyWeekNumber < 1 || s.MonthlyWeekNumber > 5 {
			errs = append(errs, "week of month must be between 1 and 5")
		}
	}

	for _, day := range s.DaysOfWeek {
		if day < 0 || day > 6 {
			errs = append(errs, fmt.Sprintf("invalid day of week %d", day))
		}
	}

	if s.Pattern != "" && !knownPattern(s.Pattern) {
		errs = append(errs, fmt.Sprintf("unknown pattern type %q", string(s.Pattern)))
	}

	return errs
}

func (s Schedule) validateBounds() []string {
	if s.Start != nil && s.End != nil && *s.End < *s.Start {
		return []string{"end date must not be before start date"}
	}
	return nil
}

func knownPattern(p Pattern) bool {
	switch p {
	case PatternWeekly, PatternBiweekly, PatternMonthlyDate, PatternMonthlyDay, PatternCustom:
		return true
	}
	return false
}
