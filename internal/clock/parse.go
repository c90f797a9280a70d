package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reClock    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm|a|p)?$`)
	reRelative = regexp.MustCompile(`^(?:in\s+|\+)(.+)$`)
	reUnit     = regexp.MustCompile(`(\d+)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)`)
)

// ParseAlarmTime turns user input into a canonical "HH:MM".
//
// Accepted forms: "07:30", "7:30", "7:30pm", "7 pm", "7am", "noon",
// "midnight", and relative offsets from now such as "in 10m", "+1h30m" or
// "in 2 hours". Relative results are truncated to the minute.
func ParseAlarmTime(input string, now time.Time) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", fmt.Errorf("empty time")
	}

	switch s {
	case "noon":
		return "12:00", nil
	case "midnight":
		return "00:00", nil
	case "now":
		return HHMM(now), nil
	}

	if m := reRelative.FindStringSubmatch(s); m != nil {
		d, err := parseOffset(m[1])
		if err != nil {
			return "", err
		}
		return HHMM(now.Add(d)), nil
	}

	m := reClock.FindStringSubmatch(strings.ReplaceAll(s, ".", ""))
	if m == nil {
		return "", fmt.Errorf("unable to parse time: %s", input)
	}
	mm := m[2]
	if mm == "" {
		mm = "00"
	}
	suffix := ""
	if m[3] != "" {
		suffix = " " + string(m[3][0]) + "m"
	}
	t24, err := To24(m[1] + ":" + mm + suffix)
	if err != nil {
		return "", fmt.Errorf("unable to parse time %q: %w", input, err)
	}
	return t24, nil
}

// parseOffset reads "10m", "1h30m", "2 hours", "1h 5 min".
func parseOffset(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(strings.ReplaceAll(s, " ", "")); err == nil && d > 0 {
		return d, nil
	}
	parts := reUnit.FindAllStringSubmatch(s, -1)
	if len(parts) == 0 {
		return 0, fmt.Errorf("invalid offset: %s", s)
	}
	var total time.Duration
	for _, p := range parts {
		n, _ := strconv.Atoi(p[1])
		if strings.HasPrefix(p[2], "h") {
			total += time.Duration(n) * time.Hour
		} else {
			total += time.Duration(n) * time.Minute
		}
	}
	if total <= 0 {
		return 0, fmt.Errorf("invalid offset: %s", s)
	}
	return total, nil
}
