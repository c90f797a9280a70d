package alarm

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/ramanasai/chime/internal/clock"
)

// Saver persists a snapshot. Implementations must not retain s.Alarms.
type Saver interface {
	Save(s Snapshot) error
}

// State is the in-memory alarm list plus the 12/24h preference.
// Every mutating method saves the full snapshot before returning.
type State struct {
	snap    Snapshot
	saver   Saver
	logger  *log.Logger
	newID   func() string
	changes chan struct{}
}

// NewState wraps snap. saver may be nil for a purely in-memory state and
// logger may be nil to discard save failures.
func NewState(snap Snapshot, saver Saver, logger *log.Logger) *State {
	if snap.Alarms == nil {
		snap.Alarms = []Alarm{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		snap:    snap,
		saver:   saver,
		logger:  logger,
		newID:   uuid.NewString,
		changes: make(chan struct{}, 1),
	}
}

// Changes delivers a notice after each mutation. Notices coalesce: a reader
// that falls behind sees one pending notice, not one per change.
func (st *State) Changes() <-chan struct{} { return st.changes }

// Snapshot returns a copy of the current state.
func (st *State) Snapshot() Snapshot { return st.snap.Clone() }

// Alarms returns a copy of the alarm list in store order.
func (st *State) Alarms() []Alarm { return st.snap.Clone().Alarms }

// Len is the number of alarms.
func (st *State) Len() int { return len(st.snap.Alarms) }

// Use24h reports the display preference.
func (st *State) Use24h() bool { return st.snap.Use24h }

// Get looks an alarm up by id.
func (st *State) Get(id string) (Alarm, bool) {
	if i := st.index(id); i >= 0 {
		return st.snap.Alarms[i], true
	}
	return Alarm{}, false
}

// SetUse24h changes the display preference.
func (st *State) SetUse24h(v bool) {
	st.snap.Use24h = v
	st.commit()
}

// Add appends a new alarm. An empty time is ignored and reports false.
func (st *State) Add(time24, label string, enabled bool) (Alarm, bool) {
	time24 = strings.TrimSpace(time24)
	if time24 == "" {
		return Alarm{}, false
	}
	a := Alarm{
		ID:      st.newID(),
		Time:    time24,
		Label:   strings.TrimSpace(label),
		Enabled: enabled,
	}
	st.snap.Alarms = append(st.snap.Alarms, a)
	st.commit()
	return a, true
}

// Delete removes the alarm with id. Unknown ids are ignored.
func (st *State) Delete(id string) bool {
	i := st.index(id)
	if i < 0 {
		return false
	}
	st.snap.Alarms = append(st.snap.Alarms[:i], st.snap.Alarms[i+1:]...)
	st.commit()
	return true
}

// Toggle flips enabled. Unknown ids are ignored.
func (st *State) Toggle(id string) bool {
	i := st.index(id)
	if i < 0 {
		return false
	}
	st.snap.Alarms[i].Enabled = !st.snap.Alarms[i].Enabled
	st.commit()
	return true
}

// MarkFired records that the alarm rang on day.
func (st *State) MarkFired(id, day string) bool {
	i := st.index(id)
	if i < 0 {
		return false
	}
	d := day
	st.snap.Alarms[i].LastFiredDay = &d
	st.commit()
	return true
}

// Snooze moves the alarm to now+d (truncated to the minute), clears its
// fired-marker so it can ring again today, and appends " (Snooze)" to the
// label. Repeated snoozes keep appending.
func (st *State) Snooze(id string, now time.Time, d time.Duration) (Alarm, bool) {
	i := st.index(id)
	if i < 0 {
		return Alarm{}, false
	}
	a := &st.snap.Alarms[i]
	a.Time = clock.HHMM(now.Add(d))
	a.LastFiredDay = nil
	a.Label = a.Title() + " (Snooze)"
	st.commit()
	return *a, true
}

func (st *State) index(id string) int {
	for i := range st.snap.Alarms {
		if st.snap.Alarms[i].ID == id {
			return i
		}
	}
	return -1
}

func (st *State) commit() {
	if st.saver != nil {
		if err := st.saver.Save(st.snap.Clone()); err != nil {
			st.logger.Warn("save snapshot", "err", err)
		}
	}
	select {
	case st.changes <- struct{}{}:
	default:
	}
}
