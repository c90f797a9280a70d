// Package alarm owns the alarm list and the ringing state machine.
//
// A State holds the persisted Snapshot and applies every mutation followed by
// a save. A Scheduler owns a State and decides, once per tick, whether an
// alarm has reached its minute. Neither type is safe for concurrent use: the
// TUI update loop or the watch loop is the single owner.
package alarm

import "time"

// DefaultLabel is shown, and used as the snooze base, for alarms without a label.
const DefaultLabel = "Alarm"

// DefaultSnooze is how far a snoozed alarm is pushed out.
const DefaultSnooze = 5 * time.Minute

// Alarm is one user-defined alarm as stored in the snapshot.
type Alarm struct {
	ID           string  `json:"id"`
	Time         string  `json:"time"` // "HH:MM", 24h
	Label        string  `json:"label"`
	Enabled      bool    `json:"enabled"`
	LastFiredDay *string `json:"lastFiredDay"`
}

// Title is the label, or DefaultLabel when the label is empty.
func (a Alarm) Title() string {
	if a.Label == "" {
		return DefaultLabel
	}
	return a.Label
}

// FiredOn reports whether the fired-marker equals day.
func (a Alarm) FiredOn(day string) bool {
	return a.LastFiredDay != nil && *a.LastFiredDay == day
}

// Snapshot is the whole persisted application state.
type Snapshot struct {
	Use24h bool    `json:"use24h"`
	Alarms []Alarm `json:"alarms"`
}

// DefaultSnapshot is what a fresh install, or an unreadable store, starts from.
func DefaultSnapshot() Snapshot {
	return Snapshot{Use24h: false, Alarms: []Alarm{}}
}

// Clone returns a copy whose alarm slice can be modified independently.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Use24h: s.Use24h, Alarms: make([]Alarm, len(s.Alarms))}
	copy(out.Alarms, s.Alarms)
	return out
}
