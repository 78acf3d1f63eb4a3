package schedule

// Matches reports whether d satisfies the schedule's recurrence rule.
// Dates outside [Start, End] never match, regardless of pattern. For one_off
// schedules Matches is always false: membership is tested directly against
// SpecificDates (see Occurs), not through pattern logic.
func (s Schedule) Matches(d Date) bool {
	if !s.inBounds(d) {
		return false
	}

	switch s.Type {
	case TypeAllDates:
		return true
	case TypeOneOff:
		return false
	case TypeRecurring:
		// handled below
	default:
		return false
	}

	switch s.Pattern {
	case PatternWeekly, PatternCustom:
		return containsWeekday(s.DaysOfWeek, int(d.Weekday()))
	case PatternBiweekly:
		return s.matchesBiweekly(d)
	case PatternMonthlyDate:
		// No clamping for short months: DayOfMonth=31 simply never matches
		// February. That is the accepted behavior, not something to fix here.
		return d.Day() == s.DayOfMonth
	case PatternMonthlyDay:
		return s.matchesMonthlyDay(d)
	default:
		return false
	}
}

func (s Schedule) inBounds(d Date) bool {
	if s.Type == TypeRecurring && s.Start == nil {
		// Invalid configuration; the validator reports it, the matcher just
		// refuses to match.
		return false
	}
	if s.Start != nil && d < *s.Start {
		return false
	}
	if s.End != nil && d > *s.End {
		return false
	}
	return true
}

// matchesBiweekly runs an independent 14-day cycle per configured weekday,
// each anchored at the first occurrence of that weekday on or after Start.
// Two weekdays therefore produce two interleaved bi-weekly series, not one
// series hitting both days every on-week.
func (s Schedule) matchesBiweekly(d Date) bool {
	if !containsWeekday(s.DaysOfWeek, int(d.Weekday())) {
		return false
	}
	start := *s.Start
	// Offset in days from Start to the first occurrence of d's weekday.
	anchor := (int(d.Weekday()) - int(start.Weekday()) + 7) % 7
	return d.DaysSince(start)%14 == anchor
}

// matchesMonthlyDay matches the Nth occurrence of a weekday in each month.
// The week-number comparison is made against the first entry of DaysOfWeek
// only, so with multiple weekdays configured only dates falling on the first
// entry can match. That mirrors the production behavior; see DESIGN.md.
func (s Schedule) matchesMonthlyDay(d Date) bool {
	if len(s.DaysOfWeek) == 0 {
		return false
	}
	if int(d.Weekday()) != s.DaysOfWeek[0] {
		return false
	}
	return weekdayOccurrence(d) == s.MonthlyWeekNumber
}

// weekdayOccurrence returns which occurrence of its own weekday d is within
// its month: 1 for days 1-7, 2 for 8-14, and so on.
func weekdayOccurrence(d Date) int {
	return (d.Day()-1)/7 + 1
}
