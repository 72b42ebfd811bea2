package utils

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TruncateDay returns the calendar date of t as midnight UTC.
// The wall-clock date in t's own location is kept.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a midnight UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return TruncateDay(a).Equal(TruncateDay(b))
}

// DateInRange reports whether date lies in the inclusive range [start, end].
func DateInRange(date, start, end time.Time) bool {
	d := TruncateDay(date)
	return !d.Before(TruncateDay(start)) && !d.After(TruncateDay(end))
}

// RangesOverlap reports whether [aStart, aEnd] and [bStart, bEnd] share at least one day.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !TruncateDay(aStart).After(TruncateDay(bEnd)) && !TruncateDay(aEnd).Before(TruncateDay(bStart))
}

// EachDay calls fn for every date in the inclusive range [start, end].
func EachDay(start, end time.Time, fn func(day time.Time)) {
	for d := TruncateDay(start); !d.After(TruncateDay(end)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// ParseDatePtr parses an optional date. Nil or malformed input yields nil.
func ParseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}

// FormatDatePtr formats an optional date.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
