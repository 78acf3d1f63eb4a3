package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewDates_CappedAtCount(t *testing.T) {
	s := Schedule{Type: TypeAllDates}

	got := PreviewDates(s, MustParseDate("2026-01-01"), 5)
	require.Len(t, got, 5)
	assert.Equal(t, "2026-01-01", got[0].String())
	assert.Equal(t, "2026-01-05", got[4].String())
}

func TestPreviewDates_DefaultCount(t *testing.T) {
	s := Schedule{Type: TypeAllDates}

	got := PreviewDates(s, MustParseDate("2026-01-01"), 0)
	assert.Len(t, got, DefaultPreviewCount)
}

func TestPreviewDates_ImpossiblePatternReturnsEmpty(t *testing.T) {
	// The 31st never occurs between Feb 1 and the end of April; the scan
	// must stop at the three-month window instead of hunting forever.
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternMonthlyDate,
		DayOfMonth: 31,
		Start:      datePtr("2026-02-01"),
		End:        datePtr("2026-04-30"),
	}

	got := PreviewDates(s, MustParseDate("2026-02-01"), 15)
	assert.Empty(t, got)
}

func TestPreviewDates_StopsAtWindow(t *testing.T) {
	s := Schedule{
		Type:       TypeRecurring,
		Pattern:    PatternMonthlyDate,
		DayOfMonth: 15,
		Start:      datePtr("2026-01-01"),
	}

	got := PreviewDates(s, MustParseDate("2026-01-01"), 15)
	// Only Jan/Feb/Mar (and Apr 1 window edge misses the 15th) fit in
	// three months even though the cap allows many more.
	require.Len(t, got, 3)
	assert.Equal(t, "2026-01-15", got[0].String())
	assert.Equal(t, "2026-02-15", got[1].String())
	assert.Equal(t, "2026-03-15", got[2].String())
}

func TestPreviewDates_OneOffUsesSpecificDates(t *testing.T) {
	s := Schedule{
		Type: TypeOneOff,
		SpecificDates: []Date{
			MustParseDate("2026-01-10"),
			MustParseDate("2026-02-20"),
			MustParseDate("2026-09-01"), // beyond the window
		},
	}

	got := PreviewDates(s, MustParseDate("2026-01-01"), 15)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01-10", got[0].String())
	assert.Equal(t, "2026-02-20", got[1].String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		expected string
	}{
		{
			name: "weekly",
			schedule: Schedule{
				Type:       TypeRecurring,
				Pattern:    PatternWeekly,
				DaysOfWeek: []int{int(time.Wednesday), int(time.Monday)},
			},
			expected: "Weekly on Monday, Wednesday",
		},
		{
			name: "biweekly",
			schedule: Schedule{
				Type:       TypeRecurring,
				Pattern:    PatternBiweekly,
				DaysOfWeek: []int{int(time.Friday)},
			},
			expected: "Every two weeks on Friday",
		},
		{
			name: "monthly by date",
			schedule: Schedule{
				Type:       TypeRecurring,
				Pattern:    PatternMonthlyDate,
				DayOfMonth: 21,
			},
			expected: "Monthly on the 21st",
		},
		{
			name: "monthly by weekday",
			schedule: Schedule{
				Type:              TypeRecurring,
				Pattern:           PatternMonthlyDay,
				DaysOfWeek:        []int{int(time.Tuesday)},
				MonthlyWeekNumber: 2,
			},
			expected: "Monthly on the 2nd Tuesday",
		},
		{
			name: "custom",
			schedule: Schedule{
				Type:       TypeRecurring,
				Pattern:    PatternCustom,
				DaysOfWeek: []int{int(time.Saturday)},
			},
			expected: "Custom schedule on Saturday",
		},
		{
			name: "one off plural",
			schedule: Schedule{
				Type:          TypeOneOff,
				SpecificDates: []Date{1, 2, 3},
			},
			expected: "On 3 selected dates",
		},
		{
			name: "one off singular",
			schedule: Schedule{
				Type:          TypeOneOff,
				SpecificDates: []Date{1},
			},
			expected: "On 1 selected date",
		},
		{
			name:     "all dates",
			schedule: Schedule{Type: TypeAllDates},
			expected: "Every day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Describe(tt.schedule))
		})
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 5: "5th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 31: "31st",
	}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n))
	}
}
