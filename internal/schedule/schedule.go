// Package schedule is the recurrence and availability engine behind
// publication schedules and sponsorship-tier availability. Everything in it
// is a pure computation over UTC calendar dates; fetching the rows that feed
// it is the caller's job.
package schedule

// Type says how a schedule defines its dates.
type Type string

const (
	// TypeRecurring repeats according to a Pattern.
	TypeRecurring Type = "recurring"
	// TypeOneOff is an explicit list of dates.
	TypeOneOff Type = "one_off"
	// TypeAllDates matches every date inside the optional bounds.
	TypeAllDates Type = "all_dates"
)

// Pattern is the recurrence rule of a recurring schedule.
type Pattern string

const (
	PatternWeekly      Pattern = "weekly"
	PatternBiweekly    Pattern = "biweekly"
	PatternMonthlyDate Pattern = "monthly_date"
	PatternMonthlyDay  Pattern = "monthly_day"
	// PatternCustom currently behaves like PatternWeekly; reserved for
	// creator-defined rules.
	PatternCustom Pattern = "custom"
)

// Schedule is a recurrence/availability definition. It doubles as a
// newsletter's publication schedule and as a tier's availability schedule;
// both uses share the same shape and semantics.
type Schedule struct {
	Type    Type
	Pattern Pattern // only meaningful when Type is recurring

	// DaysOfWeek holds weekday numbers, 0 = Sunday, matching time.Weekday.
	// Used by weekly, biweekly, monthly_day and custom patterns.
	DaysOfWeek []int

	// DayOfMonth is 1-31, used only by monthly_date.
	DayOfMonth int

	// MonthlyWeekNumber is 1-5 (1st..5th occurrence in the month), used only
	// by monthly_day together with the first entry of DaysOfWeek.
	MonthlyWeekNumber int

	// Start is required for recurring schedules; Start and End are both
	// optional bounds for all_dates. A nil End means unbounded.
	Start *Date
	End   *Date

	// SpecificDates is the authoritative date list for one_off schedules and
	// an optional ad-hoc addition list layered on top of a recurring one.
	SpecificDates []Date
}

// Occurs reports whether the schedule produces d, including one_off and
// supplemental specific dates. This is what preview and publication-calendar
// callers want; Matches is the pattern rule alone.
func (s Schedule) Occurs(d Date) bool {
	if s.Matches(d) {
		return true
	}
	for _, sd := range s.SpecificDates {
		if sd == d {
			return true
		}
	}
	return false
}

func containsWeekday(days []int, w int) bool {
	for _, d := range days {
		if d == w {
			return true
		}
	}
	return false
}
