// Package period computes the rolling calendar windows used by the reports.
package period

import "time"

// Window is a closed time interval. Both Start and End are part of the window.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// LastMonth returns the window [now - 1 calendar month, now].
func LastMonth(now time.Time) Window {
	return Window{Start: MonthsBefore(now, 1), End: now}
}

// MonthsBefore moves t back n calendar months, keeping the wall-clock time and
// location. When the day does not exist in the target month it is clamped to
// that month's last day, so 31 March minus one month is 28 (or 29) February.
func MonthsBefore(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	target := time.Date(year, month-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
