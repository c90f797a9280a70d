package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRinger struct {
	rung  []Alarm
	stops int
}

func (f *fakeRinger) Ring(a Alarm) { f.rung = append(f.rung, a) }
func (f *fakeRinger) Stop()        { f.stops++ }

func day(h, m, s int) time.Time {
	return time.Date(2026, time.October, 18, h, m, s, 0, time.Local)
}

func newTestScheduler(t *testing.T) (*Scheduler, *fakeRinger, *memSaver) {
	t.Helper()
	st, saver := newTestState(t)
	r := &fakeRinger{}
	return NewScheduler(st, r, 0), r, saver
}

func TestTickFiresOncePerDay(t *testing.T) {
	s, r, saver := newTestScheduler(t)
	a, _ := s.State().Add("07:00", "wake", true)

	_, ok := s.Tick(day(6, 59, 59))
	assert.False(t, ok)

	fired, ok := s.Tick(day(7, 0, 0))
	require.True(t, ok)
	assert.Equal(t, a.ID, fired.ID)
	require.NotNil(t, fired.LastFiredDay)
	assert.Equal(t, "Sun Oct 18 2026", *fired.LastFiredDay)
	assert.Len(t, r.rung, 1)

	// the fired marker is persisted before ringing
	require.NotNil(t, saver.last().Alarms[0].LastFiredDay)

	id, ringing := s.Ringing()
	assert.True(t, ringing)
	assert.Equal(t, a.ID, id)

	s.Stop()
	for sec := 1; sec < 60; sec++ {
		_, ok := s.Tick(day(7, 0, sec))
		assert.False(t, ok)
	}
	assert.Len(t, r.rung, 1)
	_, ringing = s.Ringing()
	assert.False(t, ringing)

	// next day it rings again
	_, ok = s.Tick(day(7, 0, 5).AddDate(0, 0, 1))
	assert.True(t, ok)
}

func TestDisabledNeverRings(t *testing.T) {
	s, r, _ := newTestScheduler(t)
	s.State().Add("07:00", "", false)

	for sec := 0; sec < 60; sec++ {
		_, ok := s.Tick(day(7, 0, sec))
		assert.False(t, ok)
	}
	assert.Empty(t, r.rung)
}

func TestFirstMatchWins(t *testing.T) {
	s, r, _ := newTestScheduler(t)
	a, _ := s.State().Add("07:00", "A", true)
	b, _ := s.State().Add("07:00", "B", true)

	fired, ok := s.Tick(day(7, 0, 0))
	require.True(t, ok)
	assert.Equal(t, a.ID, fired.ID)

	got, _ := s.State().Get(b.ID)
	assert.Nil(t, got.LastFiredDay, "B is not evaluated on A's tick")

	// A keeps ringing through the minute: B never gets a turn.
	for sec := 1; sec < 60; sec++ {
		_, ok := s.Tick(day(7, 0, sec))
		assert.False(t, ok)
	}
	s.Stop()
	_, ok = s.Tick(day(7, 1, 0))
	assert.False(t, ok)
	assert.Len(t, r.rung, 1)

	got, _ = s.State().Get(b.ID)
	assert.Nil(t, got.LastFiredDay)
}

func TestSecondMatchAfterStopWithinMinute(t *testing.T) {
	s, r, _ := newTestScheduler(t)
	a, _ := s.State().Add("07:00", "A", true)
	b, _ := s.State().Add("07:00", "B", true)

	fired, _ := s.Tick(day(7, 0, 0))
	assert.Equal(t, a.ID, fired.ID)
	s.Stop()

	// A is blocked by its fired-marker, so B is now the first match.
	fired, ok := s.Tick(day(7, 0, 20))
	require.True(t, ok)
	assert.Equal(t, b.ID, fired.ID)

	id, _ := s.Ringing()
	assert.Equal(t, b.ID, id)
	assert.Len(t, r.rung, 2)
}

func TestSnoozeReArms(t *testing.T) {
	s, r, _ := newTestScheduler(t)
	a, _ := s.State().Add("07:00", "", true)

	_, ok := s.Tick(day(7, 0, 0))
	require.True(t, ok)

	snoozed, ok := s.Snooze(day(7, 0, 42))
	require.True(t, ok)
	assert.Equal(t, a.ID, snoozed.ID)
	assert.Equal(t, "07:05", snoozed.Time)
	assert.Nil(t, snoozed.LastFiredDay)
	assert.Equal(t, 1, r.stops)

	_, ringing := s.Ringing()
	assert.False(t, ringing)

	_, ok = s.Tick(day(7, 4, 59))
	assert.False(t, ok)

	fired, ok := s.Tick(day(7, 5, 0))
	require.True(t, ok)
	assert.Equal(t, a.ID, fired.ID)
	assert.Equal(t, "Alarm (Snooze)", fired.Label)
}

func TestStopAndSnoozeWhileIdle(t *testing.T) {
	s, r, saver := newTestScheduler(t)
	s.State().Add("07:00", "", true)
	saves := len(saver.saves)

	s.Stop()
	_, ok := s.Snooze(day(7, 0, 0))
	assert.False(t, ok)
	assert.Equal(t, 2, r.stops)
	assert.Len(t, saver.saves, saves)
}

func TestDeleteWhileRinging(t *testing.T) {
	s, r, _ := newTestScheduler(t)
	a, _ := s.State().Add("07:00", "", true)

	_, ok := s.Tick(day(7, 0, 0))
	require.True(t, ok)

	require.True(t, s.State().Delete(a.ID))
	_, ok = s.RingingAlarm()
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		for sec := 1; sec < 60; sec++ {
			_, fired := s.Tick(day(7, 0, sec))
			assert.False(t, fired)
		}
	})
	_, ringing := s.Ringing()
	assert.False(t, ringing)
	assert.Equal(t, 1, r.stops, "the orphaned tone is silenced")

	_, ok = s.Snooze(day(7, 0, 30))
	assert.False(t, ok)
	assert.Zero(t, s.State().Len())
}

func TestMissedMinuteIsSkipped(t *testing.T) {
	s, r, _ := newTestScheduler(t)
	s.State().Add("07:00", "", true)

	s.Tick(day(6, 59, 59))
	s.Tick(day(7, 1, 0))
	assert.Empty(t, r.rung)
}

func TestConfiguredSnoozeLength(t *testing.T) {
	st, _ := newTestState(t)
	s := NewScheduler(st, nil, 10*time.Minute)
	st.Add("07:00", "nap", true)

	_, ok := s.Tick(day(7, 0, 0))
	require.True(t, ok)
	snoozed, _ := s.Snooze(day(7, 0, 59))
	assert.Equal(t, "07:10", snoozed.Time)
	assert.Equal(t, "nap (Snooze)", snoozed.Label)
}

func TestProject(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	a, _ := s.State().Add("07:00", "", true)
	s.State().Add("13:30", "lunch", false)

	s.Tick(day(7, 0, 0))
	v := s.Project(day(7, 0, 10))

	assert.Equal(t, "7:00:10 AM", v.Digital)
	assert.Equal(t, "Sunday, October 18, 2026", v.Date)
	require.Len(t, v.Alarms, 2)
	require.NotNil(t, v.Ringing)
	assert.Equal(t, a.ID, v.Ringing.ID)

	first := v.Alarms[0]
	assert.Equal(t, "7:00 AM", first.Display)
	assert.Equal(t, "Alarm", first.Title)
	assert.True(t, first.FiredToday)
	assert.Equal(t, day(7, 0, 0).AddDate(0, 0, 1), first.Next)

	second := v.Alarms[1]
	assert.Equal(t, "1:30 PM", second.Display)
	assert.True(t, second.Next.IsZero())

	s.State().SetUse24h(true)
	v = s.Project(day(7, 0, 10))
	assert.Equal(t, "13:30", v.Alarms[1].Display)
	assert.Equal(t, "07:00:10", v.Digital)
}
