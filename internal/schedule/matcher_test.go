package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(s string) *Date {
	d := MustParseDate(s)
	return &d
}

func matchingDates(t *testing.T, s Schedule, start, end string) []string {
	t.Helper()
	rng, err := NewDateRange(start, end)
	require.NoError(t, err)

	var out []string
	for d := range rng.Dates() {
		if s.Matches(d) {
			out = append(out, d.String())
		}
	}
	return out
}

func TestMatches_Weekly(t *testing.T) {
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternWeekly,
		DaysOfWeek: []int{int(time.Monday), int(time.Wednesday)},
		Start:      datePtr("2026-01-01"),
	}

	got := matchingDates(t, s, "2026-01-05", "2026-01-11")
	assert.Equal(t, []string{"2026-01-05", "2026-01-07"}, got)
}

func TestMatches_Biweekly_IndependentCyclesPerWeekday(t *testing.T) {
	// Start is a Monday. Monday and Wednesday each run their own 14-day
	// cycle anchored at their first occurrence on/after the start date.
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternBiweekly,
		DaysOfWeek: []int{int(time.Monday), int(time.Wednesday)},
		Start:      datePtr("2026-01-19"),
	}

	got := matchingDates(t, s, "2026-01-19", "2026-02-22")
	expected := []string{
		"2026-01-19", "2026-01-21",
		"2026-02-02", "2026-02-04",
		"2026-02-16", "2026-02-18",
	}
	assert.Equal(t, expected, got)
}

func TestMatches_MonthlyDate(t *testing.T) {
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternMonthlyDate,
		DayOfMonth: 15,
		Start:      datePtr("2026-01-01"),
	}

	assert.True(t, s.Matches(MustParseDate("2026-01-15")))
	assert.True(t, s.Matches(MustParseDate("2026-02-15")))
	assert.False(t, s.Matches(MustParseDate("2026-01-14")))
}

func TestMatches_MonthlyDate31_SkipsShortMonths(t *testing.T) {
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternMonthlyDate,
		DayOfMonth: 31,
		Start:      datePtr("2026-01-01"),
	}

	got := matchingDates(t, s, "2026-01-01", "2026-12-31")
	// February, April, June, September and November have no 31st.
	expected := []string{
		"2026-01-31", "2026-03-31", "2026-05-31",
		"2026-07-31", "2026-08-31", "2026-10-31", "2026-12-31",
	}
	assert.Equal(t, expected, got)
}

func TestMatches_MonthlyDay_SecondTuesday(t *testing.T) {
	s := Schedule{
		Type:              TypeRecurring,
		Pattern:           PatternMonthlyDay,
		DaysOfWeek:        []int{int(time.Tuesday)},
		MonthlyWeekNumber: 2,
		Start:             datePtr("2026-01-01"),
	}

	got := matchingDates(t, s, "2026-01-01", "2026-01-31")
	assert.Equal(t, []string{"2026-01-13"}, got)
}

func TestMatches_MonthlyDay_UsesFirstWeekdayEntryOnly(t *testing.T) {
	// With several weekdays configured, only the first entry's occurrence
	// counts; a Thursday is never matched here even though it is listed.
	s := Schedule{
		Type:              TypeRecurring,
		Pattern:           PatternMonthlyDay,
		DaysOfWeek:        []int{int(time.Tuesday), int(time.Thursday)},
		MonthlyWeekNumber: 2,
		Start:             datePtr("2026-01-01"),
	}

	got := matchingDates(t, s, "2026-01-01", "2026-01-31")
	assert.Equal(t, []string{"2026-01-13"}, got)
}

func TestMatches_Custom_BehavesLikeWeekly(t *testing.T) {
	weekly := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternWeekly,
		DaysOfWeek: []int{int(time.Friday)},
		Start:      datePtr("2026-01-01"),
	}
	custom := weekly
	custom.Pattern = PatternCustom

	rng, err := NewDateRange("2026-01-01", "2026-02-28")
	require.NoError(t, err)
	for d := range rng.Dates() {
		assert.Equal(t, weekly.Matches(d), custom.Matches(d), d.String())
	}
}

func TestMatches_RangeBounding(t *testing.T) {
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternWeekly,
		DaysOfWeek: []int{int(time.Monday)},
		Start:      datePtr("2026-01-19"),
		End:        datePtr("2026-02-02"),
	}

	assert.False(t, s.Matches(MustParseDate("2026-01-12")), "before start")
	assert.True(t, s.Matches(MustParseDate("2026-01-19")))
	assert.True(t, s.Matches(MustParseDate("2026-02-02")), "end date is inclusive")
	assert.False(t, s.Matches(MustParseDate("2026-02-09")), "after end")
}

func TestMatches_AllDates(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		date     string
		expected bool
	}{
		{
			name:     "unbounded matches anything",
			schedule: Schedule{Type: TypeAllDates},
			date:     "2026-06-01",
			expected: true,
		},
		{
			name:     "inside bounds",
			schedule: Schedule{Type: TypeAllDates, Start: datePtr("2026-01-01"), End: datePtr("2026-01-31")},
			date:     "2026-01-15",
			expected: true,
		},
		{
			name:     "outside bounds",
			schedule: Schedule{Type: TypeAllDates, Start: datePtr("2026-01-01"), End: datePtr("2026-01-31")},
			date:     "2026-02-01",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.schedule.Matches(MustParseDate(tt.date)))
		})
	}
}

func TestMatches_OneOff_AlwaysFalse(t *testing.T) {
	s := Schedule{
		Type:          TypeOneOff,
		SpecificDates: []Date{MustParseDate("2026-03-10")},
	}

	assert.False(t, s.Matches(MustParseDate("2026-03-10")))
	assert.True(t, s.Occurs(MustParseDate("2026-03-10")))
	assert.False(t, s.Occurs(MustParseDate("2026-03-11")))
}

func TestOccurs_RecurringWithSupplementalDates(t *testing.T) {
	s := Schedule{
		Type:          TypeRecurring,
		Pattern:       PatternWeekly,
		DaysOfWeek:    []int{int(time.Monday)},
		Start:         datePtr("2026-01-01"),
		SpecificDates: []Date{MustParseDate("2026-01-15")}, // a Thursday
	}

	assert.True(t, s.Occurs(MustParseDate("2026-01-05")), "pattern date")
	assert.True(t, s.Occurs(MustParseDate("2026-01-15")), "ad-hoc addition")
	assert.False(t, s.Occurs(MustParseDate("2026-01-16")))
}

func TestMatches_RecurringWithoutStartNeverMatches(t *testing.T) {
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternWeekly,
		DaysOfWeek: []int{int(time.Monday)},
	}
	assert.False(t, s.Matches(MustParseDate("2026-01-05")))
}
