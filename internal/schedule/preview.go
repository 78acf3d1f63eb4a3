package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultPreviewCount caps preview lists when the caller passes count <= 0.
const DefaultPreviewCount = 15

// previewWindowMonths bounds how far forward PreviewDates scans. Sparse or
// impossible patterns (monthly_date=31 through February) would otherwise
// turn the scan into an unbounded loop.
const previewWindowMonths = 3

// PreviewDates returns up to count upcoming dates the schedule produces,
// searching forward from `from` for at most three calendar months. A pattern
// with no matches in that window yields an empty list.
func PreviewDates(s Schedule, from Date, count int) []Date {
	if count <= 0 {
		count = DefaultPreviewCount
	}
	windowEnd := from.AddMonths(previewWindowMonths)

	out := make([]Date, 0, count)
	for d := from; d <= windowEnd; d++ {
		if s.Occurs(d) {
			out = append(out, d)
			if len(out) == count {
				break
			}
		}
	}
	return out
}

// Describe renders the schedule as a one-line English phrase for the
// settings and preview UI, e.g. "Weekly on Monday, Wednesday".
func Describe(s Schedule) string {
	switch s.Type {
	case TypeOneOff:
		n := len(s.SpecificDates)
		if n == 1 {
			return "On 1 selected date"
		}
		return fmt.Sprintf("On %d selected dates", n)
	case TypeAllDates:
		return "Every day"
	case TypeRecurring:
		// handled below
	default:
		return "No schedule"
	}

	switch s.Pattern {
	case PatternWeekly:
		return "Weekly on " + weekdayList(s.DaysOfWeek)
	case PatternBiweekly:
		return "Every two weeks on " + weekdayList(s.DaysOfWeek)
	case PatternMonthlyDate:
		return fmt.Sprintf("Monthly on the %s", ordinal(s.DayOfMonth))
	case PatternMonthlyDay:
		if len(s.DaysOfWeek) == 0 {
			return "Monthly"
		}
		return fmt.Sprintf("Monthly on the %s %s",
			ordinal(s.MonthlyWeekNumber), time.Weekday(s.DaysOfWeek[0]).String())
	case PatternCustom:
		return "Custom schedule on " + weekdayList(s.DaysOfWeek)
	default:
		return "No schedule"
	}
}

func weekdayList(days []int) string {
	sorted := make([]int, len(days))
	copy(sorted, days)
	sort.Ints(sorted)

	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if d < 0 || d > 6 {
			continue
		}
		names = append(names, time.Weekday(d).String())
	}
	return strings.Join(names, ", ")
}

func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
