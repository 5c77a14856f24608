package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestNextDue(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		months   int
		expected time.Time
	}{
		{"one month", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"three months", date(2025, time.March, 15), 3, date(2025, time.June, 15)},
		{"six months", date(2025, time.January, 15), 6, date(2025, time.July, 15)},
		{"twelve months", date(2025, time.January, 15), 12, date(2026, time.January, 15)},
		{"twenty-four months", date(2025, time.January, 15), 24, date(2027, time.January, 15)},
		{"year boundary", date(2025, time.November, 20), 3, date(2026, time.February, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextDue(tt.ref, tt.months))
		})
	}
}

// Short target months roll over rather than clamping to the month's end.
func TestNextDueRollover(t *testing.T) {
	// Jan 31 + 1 month lands on the nonexistent Feb 31, which normalizes
	// to Mar 3 in a non-leap year.
	assert.Equal(t, date(2025, time.March, 3), NextDue(date(2025, time.January, 31), 1))

	// Leap year: Feb has 29 days, so the overflow is one day smaller.
	assert.Equal(t, date(2024, time.March, 2), NextDue(date(2024, time.January, 31), 1))

	// Aug 31 + 6 months = Feb 31 -> Mar 3.
	assert.Equal(t, date(2026, time.March, 3), NextDue(date(2025, time.August, 31), 6))
}

// Recording a maintenance re-anchors the schedule at the actual service date,
// not at the previously planned due date.
func TestNextDueReanchorsOnActualDate(t *testing.T) {
	installed := date(2025, time.January, 10)
	due := NextDue(installed, 6)
	assert.Equal(t, date(2025, time.July, 10), due)

	// Technician shows up a day late; the next cycle counts from then.
	serviced := due.AddDate(0, 0, 1)
	assert.Equal(t, date(2026, time.January, 11), NextDue(serviced, 6))
}

func TestValidInterval(t *testing.T) {
	for _, m := range AllowedIntervals {
		assert.True(t, ValidInterval(m), "interval %d should be allowed", m)
	}
	for _, m := range []int{0, -1, 2, 5, 13, 25} {
		assert.False(t, ValidInterval(m), "interval %d should be rejected", m)
	}
}
