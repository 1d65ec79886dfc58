// Package maintenance holds the pure derivation rules for component upkeep:
// the overdue/due-soon classification, relative-time formatting for the
// notification feed, and the month grid backing the maintenance calendar.
// Nothing here reads or writes stored state.
package maintenance

import (
	"fmt"
	"time"
)

// Status classifies a component's upkeep timeliness.
type Status string

const (
	StatusOverdue  Status = "Overdue"
	StatusDueSoon  Status = "Due Soon"
	StatusUpToDate Status = "Up to Date"
)

// DateLayout is the calendar-date format used by all stored dates.
const DateLayout = "2006-01-02"

// StatusAt classifies lastMaintenance against the reference time using
// calendar-month arithmetic: more than six months ago is overdue, the
// closed-open band [six months ago, five months ago) is due soon, anything
// newer is up to date.
func StatusAt(lastMaintenance, at time.Time) Status {
	sixMonthsAgo := at.AddDate(0, -6, 0)
	fiveMonthsAgo := at.AddDate(0, -5, 0)

	switch {
	case lastMaintenance.Before(sixMonthsAgo):
		return StatusOverdue
	case lastMaintenance.Before(fiveMonthsAgo):
		return StatusDueSoon
	default:
		return StatusUpToDate
	}
}

// StatusForDate is StatusAt over a stored date string. An unparseable date
// never matches either band and therefore reads as up to date, so the
// function is total over arbitrary input.
func StatusForDate(lastMaintenance string, at time.Time) Status {
	t, err := ParseDate(lastMaintenance)
	if err != nil {
		return StatusUpToDate
	}
	return StatusAt(t, at)
}

// ParseDate parses a stored calendar date, accepting a full RFC 3339
// timestamp as a fallback.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Fixed conversion constants for TimeAgo. Deliberately not calendar-aware:
// a year is 365 days and a month is 30, for display parity with the feed.
const (
	yearSeconds   = 31536000
	monthSeconds  = 2592000
	daySeconds    = 86400
	hourSeconds   = 3600
	minuteSeconds = 60
)

// TimeAgo renders the elapsed time since t as a human string, largest
// nonzero unit wins, minute granularity at the bottom.
func TimeAgo(t, at time.Time) string {
	seconds := int64(at.Sub(t).Seconds())

	for _, u := range []struct {
		secs     int64
		singular string
	}{
		{yearSeconds, "year"},
		{monthSeconds, "month"},
		{daySeconds, "day"},
		{hourSeconds, "hour"},
		{minuteSeconds, "minute"},
	} {
		if n := seconds / u.secs; n >= 1 {
			if n == 1 {
				return fmt.Sprintf("1 %s ago", u.singular)
			}
			return fmt.Sprintf("%d %ss ago", n, u.singular)
		}
	}

	return "Just now"
}

// MonthGrid returns the fixed 42-cell (6x7) calendar grid for a month,
// starting on the Sunday on or before the 1st and padding with days of the
// neighboring months. Cells are UTC midnights.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, 0, 42)
	for i := 0; i < 42; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
