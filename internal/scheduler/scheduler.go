package scheduler

import "time"

// Maintenance intervals (in months) a heater may be configured with.
var AllowedIntervals = []int{1, 3, 6, 12, 24}

// NextDue returns the next maintenance due date: referenceDate advanced by
// intervalMonths calendar months.
//
// Month arithmetic uses natural rollover (time.AddDate semantics): if the
// target month is shorter than the reference day-of-month, the date rolls
// into the following month, e.g. Jan 31 + 1 month = Mar 3 (Mar 2 in leap
// years). The rule is deliberately not clamp-to-end-of-month; tests pin it.
func NextDue(referenceDate time.Time, intervalMonths int) time.Time {
	return referenceDate.AddDate(0, intervalMonths, 0)
}

// ValidInterval reports whether months is an allowed maintenance interval.
func ValidInterval(months int) bool {
	for _, m := range AllowedIntervals {
		if m == months {
			return true
		}
	}
	return false
}
