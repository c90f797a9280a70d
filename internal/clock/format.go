// Package clock holds the pure time helpers shared by the scheduler, the TUI
// and the CLI: display formatting, the canonical alarm comparison key and the
// calendar-day marker used to stop an alarm from firing twice in one day.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	layoutDigital24 = "15:04:05"
	layoutDigital12 = "3:04:05 PM"
	layoutDate      = "Monday, January 2, 2006"
	layoutHHMM      = "15:04"
	layoutDay       = "Mon Jan 02 2006"
)

// FormatDigital renders the running clock line. 24h mode drops the AM/PM suffix.
func FormatDigital(now time.Time, use24h bool) string {
	if use24h {
		return now.Format(layoutDigital24)
	}
	return now.Format(layoutDigital12)
}

// FormatDate renders the long date line, e.g. "Sunday, October 18, 2026".
func FormatDate(now time.Time) string {
	return now.Format(layoutDate)
}

// HHMM is the zero-padded 24-hour "HH:MM" key alarms are compared against.
// It does not depend on the display preference.
func HHMM(now time.Time) string {
	return now.Format(layoutHHMM)
}

// DayKey identifies the calendar day of now in its own location.
// The shape matches what older snapshots stored ("Sun Oct 18 2026").
func DayKey(now time.Time) string {
	return now.Format(layoutDay)
}

// FormatAlarmDisplay turns a stored "HH:MM" into what the user sees.
// Input that is not "H:MM"-shaped is returned untouched.
func FormatAlarmDisplay(time24 string, use24h bool) string {
	if use24h {
		return time24
	}
	hh, mm, ok := strings.Cut(time24, ":")
	if !ok {
		return time24
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return time24
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, mm, ampm)
}

// To24 is the inverse of the 12-hour FormatAlarmDisplay: "12:05 AM" -> "00:05".
// Strings already in 24-hour form are normalised to two-digit hours.
func To24(display string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(display))
	suffix := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		suffix = "AM"
	case strings.HasSuffix(s, "PM"):
		suffix = "PM"
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, suffix))

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return "", fmt.Errorf("invalid time %q", display)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return "", fmt.Errorf("invalid hour in %q: %w", display, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || m < 0 || m > 59 {
		return "", fmt.Errorf("invalid minute in %q", display)
	}

	switch suffix {
	case "":
		if h < 0 || h > 23 {
			return "", fmt.Errorf("hour out of range in %q", display)
		}
	default:
		if h < 1 || h > 12 {
			return "", fmt.Errorf("hour out of range in %q", display)
		}
		h %= 12
		if suffix == "PM" {
			h += 12
		}
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// ValidHHMM reports whether s is a canonical "HH:MM" 24-hour string.
func ValidHHMM(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(layoutHHMM, s)
	return err == nil
}

// Next returns the next wall-clock instant after now at which an alarm set
// for time24 would ring. ok is false when time24 is malformed.
func Next(now time.Time, time24 string) (t time.Time, ok bool) {
	if !ValidHHMM(time24) {
		return time.Time{}, false
	}
	p, _ := time.Parse(layoutHHMM, time24)
	cand := time.Date(now.Year(), now.Month(), now.Day(), p.Hour(), p.Minute(), 0, 0, now.Location())
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand, true
}
