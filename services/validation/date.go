package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout   = "02/01/2006"
	dateDigits   = 8
	febLeapMax   = 29
	unknownMonth = 0
)

var datePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/(\d{4})$`)

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year. A year <= 0
// means "not known yet" and gives February 29 days.
func DaysInMonth(month, year int) int {
	switch month {
	case 2:
		if year <= 0 || IsLeapYear(year) {
			return febLeapMax
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// MaskDate applies one edit of a DD/MM/YYYY field. input is the raw field text
// after the keystroke; prev is the accepted text before it. The returned bool
// is false when the keystroke is rejected, in which case prev is returned.
func MaskDate(prev, input string) (string, bool) {
	digits := onlyDigits(input)
	if len(digits) > dateDigits {
		digits = digits[:dateDigits]
	}
	if !datePrefixValid(digits) {
		return prev, false
	}
	return formatDateDigits(digits), true
}

func datePrefixValid(d string) bool {
	n := len(d)
	if n >= 1 && d[0] > '3' {
		return false
	}
	var day int
	if n >= 2 {
		day = atoi(d[0:2])
		if day < 1 || day > 31 {
			return false
		}
	}
	if n >= 3 && d[2] > '1' {
		return false
	}
	month := unknownMonth
	if n >= 4 {
		month = atoi(d[2:4])
		if month < 1 || month > 12 {
			return false
		}
	}
	year := 0
	if n == dateDigits {
		year = atoi(d[4:8])
	}
	if month != unknownMonth && day > DaysInMonth(month, year) {
		return false
	}
	return true
}

func formatDateDigits(d string) string {
	var b strings.Builder
	for i, r := range d {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateDate checks a complete DD/MM/YYYY value against the calendar.
func ValidateDate(s string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fieldError("date", "must be in DD/MM/YYYY format")
	}
	day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if day > DaysInMonth(month, year) {
		return time.Time{}, fieldError("date", "%s is not a calendar date", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// NormalizeBirthDate accepts DD/MM/YYYY or YYYY-MM-DD and returns YYYY-MM-DD.
func NormalizeBirthDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fieldError("birthDate", "is required")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), nil
	}
	t, err := ValidateDate(s)
	if err != nil {
		return "", fieldError("birthDate", "must be DD/MM/YYYY or YYYY-MM-DD")
	}
	return t.Format("2006-01-02"), nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
