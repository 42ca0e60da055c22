package onboarding

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// ParseDate reads a date from a loosely typed upstream value. Anything that
// is not a recognizable date yields nil.
func ParseDate(value any) *time.Time {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		t := *v
		return &t
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

// dateOnly drops the time of day so comparisons happen on calendar days.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsWithinYears reports whether date falls no more than years before today.
// The boundary day counts. A nil date is never within the window.
func IsWithinYears(date *time.Time, years int, today time.Time) bool {
	if date == nil {
		return false
	}
	cutoff := dateOnly(today).AddDate(-years, 0, 0)
	return !dateOnly(*date).Before(cutoff)
}

// notExpired reports whether an expiration date is today or later. A nil
// expiration never expires.
func notExpired(expiresOn *time.Time, today time.Time) bool {
	if expiresOn == nil {
		return true
	}
	return !dateOnly(*expiresOn).Before(dateOnly(today))
}
