package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ramanasai/chime/internal/alarm"
)

var (
	ErrNoAlarm        = errors.New("no alarm matches")
	ErrAmbiguousAlarm = errors.New("alarm id prefix is ambiguous")
)

// ResolveID finds the single alarm whose id equals or starts with prefix.
func ResolveID(alarms []alarm.Alarm, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNoAlarm)
	}
	var matches []string
	for _, a := range alarms {
		if a.ID == prefix {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, prefix) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w %q", ErrNoAlarm, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d alarms", ErrAmbiguousAlarm, prefix, len(matches))
	}
}
