package schedule

import "time"

// Status classifies a single date for booking purposes.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusUnavailable Status = "unavailable"
)

// Reasons surfaced to the booking UI alongside non-available statuses.
const (
	ReasonSoldOut         = "Sold Out"
	ReasonDateClosed      = "Date Closed"
	ReasonTierUnavailable = "Tier unavailable"
)

// DayAvailability is the availability decision for one date.
type DayAvailability struct {
	Date   Date   `json:"-"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// defaultWeekdays is the Mon-Fri gate applied when a tier has no explicit
// allowed-weekday set.
var defaultWeekdays = []int{
	int(time.Monday), int(time.Tuesday), int(time.Wednesday),
	int(time.Thursday), int(time.Friday),
}

// ResolveAvailability classifies every date in rng for a weekday-gated tier.
// Priority per date: booked ("Sold Out") wins over blacked-out
// ("Date Closed"), which wins over the weekday gate ("Tier unavailable").
// allowedWeekdays uses 0=Sunday numbering; nil or empty means Mon-Fri.
//
// This is the simple per-tier gate used by the booking flow. Tiers whose
// availability follows a full Schedule go through ResolveScheduleDates
// instead; the two are deliberately separate code paths.
func ResolveAvailability(allowedWeekdays []int, blackouts, booked DateSet, rng DateRange) []DayAvailability {
	if len(allowedWeekdays) == 0 {
		allowedWeekdays = defaultWeekdays
	}

	out := make([]DayAvailability, 0, rng.Len())
	for d := range rng.Dates() {
		out = append(out, classify(d, allowedWeekdays, blackouts, booked))
	}
	return out
}

func classify(d Date, allowedWeekdays []int, blackouts, booked DateSet) DayAvailability {
	switch {
	case booked.Contains(d):
		return DayAvailability{Date: d, Status: StatusBooked, Reason: ReasonSoldOut}
	case blackouts.Contains(d):
		return DayAvailability{Date: d, Status: StatusUnavailable, Reason: ReasonDateClosed}
	case !containsWeekday(allowedWeekdays, int(d.Weekday())):
		return DayAvailability{Date: d, Status: StatusUnavailable, Reason: ReasonTierUnavailable}
	default:
		return DayAvailability{Date: d, Status: StatusAvailable}
	}
}

// ResolveScheduleDates classifies the dates in rng that the schedule
// produces (pattern matches plus specific dates). Dates the schedule skips
// are omitted from the result. Booked dates take priority over blackouts,
// same as ResolveAvailability.
func ResolveScheduleDates(s Schedule, blackouts, booked DateSet, rng DateRange) []DayAvailability {
	var out []DayAvailability
	for d := range rng.Dates() {
		if !s.Occurs(d) {
			continue
		}
		switch {
		case booked.Contains(d):
			out = append(out, DayAvailability{Date: d, Status: StatusBooked, Reason: ReasonSoldOut})
		case blackouts.Contains(d):
			out = append(out, DayAvailability{Date: d, Status: StatusUnavailable, Reason: ReasonDateClosed})
		default:
			out = append(out, DayAvailability{Date: d, Status: StatusAvailable})
		}
	}
	return out
}
