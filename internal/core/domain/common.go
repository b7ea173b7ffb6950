package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
)

// DateLayout is the ISO-8601 calendar date layout used on the wire and as the timeline merge key.
const DateLayout = "2006-01-02"

// Allowed year range for every calendar date the service stores or evaluates.
const (
	MinYear = 1900
	MaxYear = 2100
)

// NewDate returns the calendar date as a time.Time at 00:00 UTC.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock part of t, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date. Impossible dates
// such as 2025-02-30 are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// YearInRange reports whether t's year lies in [MinYear, MaxYear].
func YearInRange(t time.Time) bool {
	return t.Year() >= MinYear && t.Year() <= MaxYear
}

// Messages shared by the entity validators and the HTTP boundary.
const (
	MsgDateRequired   = "This field is required."
	MsgDateFormat     = "Date has wrong format. Use YYYY-MM-DD."
	MsgYearOutOfRange = "Year must be in [1900..2100]."
)

// ParseDateField parses raw into a calendar date, recording a field error on v
// when raw is empty or malformed. The zero time is returned on failure.
func ParseDateField(v *apperrors.ValidationFailedError, field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		v.Add(field, MsgDateRequired)
		return time.Time{}
	}
	t, err := ParseDate(raw)
	if err != nil {
		v.Add(field, MsgDateFormat)
		return time.Time{}
	}
	return t
}

func checkYear(v *apperrors.ValidationFailedError, field string, t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if !YearInRange(t) {
		v.Add(field, MsgYearOutOfRange)
		return false
	}
	return true
}
