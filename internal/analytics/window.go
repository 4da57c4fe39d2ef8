package analytics

import (
	"fmt"
	"time"
)

// DefaultTrailingMonths is used by MonthlySeries when no window is given.
const DefaultTrailingMonths = 6

// Window selects the dates an aggregation covers: either the trailing N months
// ending with the current month, or an explicit inclusive range.
type Window struct {
	start    time.Time
	end      time.Time
	trailing int
	explicit bool
}

// Trailing covers the current month and the months-1 months before it.
func Trailing(months int) Window {
	return Window{trailing: months}
}

// Between covers [start, end] inclusive.
func Between(start, end time.Time) Window {
	return Window{start: start, end: end, explicit: true}
}

// CurrentMonth covers the calendar month containing "now".
func CurrentMonth() Window {
	return Trailing(1)
}

func (w Window) IsZero() bool {
	return !w.explicit && w.trailing == 0
}

// Resolve turns the window into concrete calendar dates relative to now.
func (w Window) Resolve(now time.Time) (time.Time, time.Time, error) {
	if !w.explicit {
		if w.trailing < 1 {
			return time.Time{}, time.Time{}, &InvalidRangeError{
				Reason: fmt.Sprintf("trailing month count must be positive, got %d", w.trailing),
			}
		}
		current := monthStart(now)
		return current.AddDate(0, -(w.trailing - 1), 0), monthEnd(current), nil
	}

	start, end := civilDate(w.start), civilDate(w.end)
	if start.After(end) {
		return time.Time{}, time.Time{}, &InvalidRangeError{Start: start, End: end}
	}
	return start, end, nil
}

// singleMonth reports whether [start, end] is exactly one whole calendar month.
func singleMonth(start, end time.Time) bool {
	return start.Equal(monthStart(start)) && end.Equal(monthEnd(start))
}
