package dateutil

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

func Parse(v string) (time.Time, error) {
	t, err := time.Parse(Layout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseOptional returns nil for an empty or nil string.
func ParseOptional(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := Parse(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(Layout)
	return &v
}

// Truncate drops the clock part and normalizes to UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// WorkingDays counts weekdays between start and end inclusive.
func WorkingDays(start, end time.Time) int {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
