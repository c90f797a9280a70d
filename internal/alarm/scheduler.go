package alarm

import (
	"time"

	"github.com/ramanasai/chime/internal/clock"
)

// Ringer presents a ringing alarm and silences it again.
type Ringer interface {
	Ring(a Alarm)
	Stop()
}

type nopRinger struct{}

func (nopRinger) Ring(Alarm) {}
func (nopRinger) Stop()      {}

// Scheduler is the Idle/Ringing state machine driven by a periodic tick.
type Scheduler struct {
	state  *State
	ringer Ringer
	snooze time.Duration

	ringingID string
	ringing   bool
}

// NewScheduler starts Idle. A nil ringer is allowed; a non-positive snooze
// falls back to DefaultSnooze.
func NewScheduler(state *State, ringer Ringer, snooze time.Duration) *Scheduler {
	if ringer == nil {
		ringer = nopRinger{}
	}
	if snooze <= 0 {
		snooze = DefaultSnooze
	}
	return &Scheduler{state: state, ringer: ringer, snooze: snooze}
}

// State exposes the owned alarm state for command handlers.
func (s *Scheduler) State() *State { return s.state }

// SnoozeLength is the configured snooze duration.
func (s *Scheduler) SnoozeLength() time.Duration { return s.snooze }

// Ringing returns the id of the ringing alarm, if any.
func (s *Scheduler) Ringing() (string, bool) {
	return s.ringingID, s.ringing
}

// RingingAlarm resolves the ringing id against the store. ok is false when
// idle or when the ringing alarm has since been deleted.
func (s *Scheduler) RingingAlarm() (Alarm, bool) {
	if !s.ringing {
		return Alarm{}, false
	}
	return s.state.Get(s.ringingID)
}

// Tick checks the alarm list against now. The first enabled alarm whose time
// equals the current minute and that has not fired today is marked fired,
// rung and returned. Alarms after it are not looked at on this tick, and
// nothing is looked at while an alarm is ringing. A ringing alarm that has
// been deleted is silenced here.
func (s *Scheduler) Tick(now time.Time) (Alarm, bool) {
	if s.ringing {
		if _, ok := s.state.Get(s.ringingID); ok {
			return Alarm{}, false
		}
		s.Stop()
	}
	nowHHMM := clock.HHMM(now)
	today := clock.DayKey(now)

	for _, a := range s.state.snap.Alarms {
		if !a.Enabled || a.Time != nowHHMM || a.FiredOn(today) {
			continue
		}
		s.state.MarkFired(a.ID, today)
		fired, _ := s.state.Get(a.ID)
		s.ringingID, s.ringing = fired.ID, true
		s.ringer.Ring(fired)
		return fired, true
	}
	return Alarm{}, false
}

// Stop silences the ringing alarm. The alarm keeps today's fired-marker and
// so stays quiet until tomorrow.
func (s *Scheduler) Stop() {
	s.ringer.Stop()
	s.ringingID, s.ringing = "", false
}

// Snooze silences the ringing alarm and re-arms it SnoozeLength from now.
// If nothing is ringing, or the ringing alarm was deleted, only the
// presentation is cleared.
func (s *Scheduler) Snooze(now time.Time) (Alarm, bool) {
	s.ringer.Stop()
	id, was := s.ringingID, s.ringing
	s.ringingID, s.ringing = "", false
	if !was {
		return Alarm{}, false
	}
	return s.state.Snooze(id, now, s.snooze)
}
