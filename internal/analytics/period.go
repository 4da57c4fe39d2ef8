package analytics

import (
	"errors"
	"fmt"
	"time"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
)

// ErrInvalidRange is matched by every InvalidRangeError.
var ErrInvalidRange = errors.New("invalid date range")

// InvalidRangeError reports a window whose start falls after its end, or a
// trailing window with a non-positive month count.
type InvalidRangeError struct {
	Start  time.Time
	End    time.Time
	Reason string
}

func (e *InvalidRangeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s", ErrInvalidRange, e.Reason)
	}
	return fmt.Sprintf("%v: start %s is after end %s", ErrInvalidRange,
		e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Period is one calendar month. Start is the first day, End the last day.
type Period struct {
	Key   string
	Label string
	Start time.Time
	End   time.Time
}

// Months returns one Period per calendar month touched by [start, end], in
// chronological order. Time of day is ignored.
func Months(start, end time.Time) ([]Period, error) {
	start, end = civilDate(start), civilDate(end)
	if start.After(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	var periods []Period
	for cur := monthStart(start); !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		periods = append(periods, newPeriod(cur))
	}
	return periods, nil
}

// MonthKey is the bucket key for the month containing t.
func MonthKey(t time.Time) string {
	return civilDate(t).Format(monthKeyLayout)
}

func newPeriod(first time.Time) Period {
	return Period{
		Key:   first.Format(monthKeyLayout),
		Label: first.Format(monthLabelLayout),
		Start: first,
		End:   first.AddDate(0, 1, -1),
	}
}

// civilDate drops the time of day, keeping the calendar date as seen in t's
// own location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, -1)
}
