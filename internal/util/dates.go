package util

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")

// DateRange is a half-open [Start, End) window. A zero bound means unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) HasStart() bool { return !r.Start.IsZero() }
func (r DateRange) HasEnd() bool   { return !r.End.IsZero() }

// ParseDateRange accepts RFC3339 timestamps or YYYY-MM-DD dates. A date-only end
// includes the whole day. Reversed bounds are swapped.
func ParseDateRange(startStr, endStr *string) (DateRange, error) {
	start, _, err := parseDate(startStr)
	if err != nil {
		return DateRange{}, err
	}
	end, endDateOnly, err := parseDate(endStr)
	if err != nil {
		return DateRange{}, err
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		start, end = end, start
	}
	if !end.IsZero() && endDateOnly {
		end = end.AddDate(0, 0, 1)
	}
	return DateRange{Start: start, End: end}, nil
}

func parseDate(s *string) (time.Time, bool, error) {
	if s == nil {
		return time.Time{}, false, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, ErrInvalidDate
}
