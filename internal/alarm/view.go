package alarm

import (
	"time"

	"github.com/ramanasai/chime/internal/clock"
)

// View is a read-only projection of the scheduler for renderers.
type View struct {
	Now     time.Time
	Digital string
	Date    string
	Use24h  bool
	Hands   clock.HandAngles
	Alarms  []AlarmView
	Ringing *AlarmView
}

// AlarmView is one alarm as a renderer shows it.
type AlarmView struct {
	ID         string
	Time       string // stored "HH:MM"
	Display    string // honours the 12/24h preference
	Title      string
	Enabled    bool
	FiredToday bool
	Ringing    bool
	Next       time.Time // zero when disabled or malformed
}

// Project builds the View for now.
func (s *Scheduler) Project(now time.Time) View {
	use24h := s.state.Use24h()
	today := clock.DayKey(now)
	ringID, ringing := s.Ringing()

	v := View{
		Now:     now,
		Digital: clock.FormatDigital(now, use24h),
		Date:    clock.FormatDate(now),
		Use24h:  use24h,
		Hands:   clock.Hands(now),
		Alarms:  make([]AlarmView, 0, s.state.Len()),
	}
	for _, a := range s.state.snap.Alarms {
		av := AlarmView{
			ID:         a.ID,
			Time:       a.Time,
			Display:    clock.FormatAlarmDisplay(a.Time, use24h),
			Title:      a.Title(),
			Enabled:    a.Enabled,
			FiredToday: a.FiredOn(today),
			Ringing:    ringing && a.ID == ringID,
		}
		if a.Enabled {
			if next, ok := clock.Next(now, a.Time); ok {
				// Already rang today: the next ring is tomorrow's.
				if av.FiredToday && clock.DayKey(next) == today {
					next = next.AddDate(0, 0, 1)
				}
				av.Next = next
			}
		}
		v.Alarms = append(v.Alarms, av)
		if av.Ringing {
			r := av
			v.Ringing = &r
		}
	}
	return v
}
