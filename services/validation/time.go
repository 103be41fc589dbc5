package validation

import (
	"regexp"
	"strings"
	"time"
)

const (
	timeDigits = 4

	// Clinic opening hours in minutes from midnight, both ends inclusive.
	OpeningMinute = 8 * 60
	ClosingMinute = 17 * 60
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// MaskTime applies one edit of an HH:MM (24h) field, with the same contract
// as MaskDate.
func MaskTime(prev, input string) (string, bool) {
	digits := onlyDigits(input)
	if len(digits) > timeDigits {
		digits = digits[:timeDigits]
	}
	if !timePrefixValid(digits) {
		return prev, false
	}
	var b strings.Builder
	for i, r := range digits {
		if i == 2 {
			b.WriteByte(':')
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

func timePrefixValid(d string) bool {
	n := len(d)
	if n >= 1 && d[0] > '2' {
		return false
	}
	if n >= 2 && atoi(d[0:2]) > 23 {
		return false
	}
	if n >= 3 && d[2] > '5' {
		return false
	}
	if n >= 4 && atoi(d[2:4]) > 59 {
		return false
	}
	return true
}

// ValidateTime checks a complete HH:MM value and returns minutes from midnight.
func ValidateTime(s string) (int, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fieldError("time", "must be in HH:MM format (24h)")
	}
	return atoi(m[1])*60 + atoi(m[2]), nil
}

// WithinBusinessHours reports whether s lies in 08:00-17:00, 17:00 included.
func WithinBusinessHours(s string) bool {
	minute, err := ValidateTime(s)
	if err != nil {
		return false
	}
	return minute >= OpeningMinute && minute <= ClosingMinute
}

// BookingTimestamp combines a DD/MM/YYYY date and an HH:MM time into an
// instant, reading the wall clock as UTC. The time must fall within business
// hours.
func BookingTimestamp(date, clock string) (time.Time, error) {
	day, err := ValidateDate(strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, err
	}
	clock = strings.TrimSpace(clock)
	minute, err := ValidateTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	if !WithinBusinessHours(clock) {
		return time.Time{}, fieldError("time", "must be between 08:00 and 17:00")
	}
	return day.Add(time.Duration(minute) * time.Minute), nil
}

// ISOLayout is the millisecond-precision UTC layout the backend stores.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO accepts any RFC 3339 timestamp.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fieldError("date", "must be an ISO-8601 timestamp")
	}
	return t.UTC(), nil
}
