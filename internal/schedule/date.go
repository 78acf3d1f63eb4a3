package schedule

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// Layout of all date strings exchanged with the store and the API.
const DateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("schedule: invalid date range")

// Date is a calendar date as a UTC day count (days since the Unix epoch).
// Keeping dates as day counts instead of time.Time values means a date can
// never pick up a local timezone and shift by a day when compared.
type Date int

// ParseDate parses a YYYY-MM-DD string as UTC midnight.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("schedule: parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for trusted literals; it panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) Date {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date(midnight.Unix() / 86400)
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Unix(int64(d)*86400, 0).UTC()
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Day returns the day of month, 1-31.
func (d Date) Day() int {
	return d.Time().Day()
}

func (d Date) Month() time.Month {
	return d.Time().Month()
}

func (d Date) Year() int {
	return d.Time().Year()
}

func (d Date) AddDays(n int) Date {
	return d + Date(n)
}

// AddMonths uses time.AddDate month arithmetic (overflow normalizes, e.g.
// Jan 31 + 1 month = Mar 2/3).
func (d Date) AddMonths(n int) Date {
	return DateOf(d.Time().AddDate(0, n, 0))
}

// DaysSince returns the number of whole days from o to d (negative when d
// precedes o).
func (d Date) DaysSince(o Date) int {
	return int(d - o)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange parses the inclusive [start, end] range from YYYY-MM-DD strings.
func NewDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	if e < s {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: s, End: e}, nil
}

// Dates yields every date in the range, one per day, in order. The sequence
// is finite and restartable: ranging over it twice yields identical dates.
func (r DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.Start; d <= r.End; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of dates in the range.
func (r DateRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End-r.Start) + 1
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d Date) bool {
	return d >= r.Start && d <= r.End
}

// DateSet is an unordered set of dates, used for blackout and booked lookups.
type DateSet map[Date]struct{}

func NewDateSet(dates ...Date) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

func (s DateSet) Add(d Date) {
	s[d] = struct{}{}
}

func (s DateSet) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}
