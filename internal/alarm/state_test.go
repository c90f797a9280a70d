package alarm

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSaver struct {
	saves []Snapshot
	err   error
}

func (m *memSaver) Save(s Snapshot) error {
	m.saves = append(m.saves, s)
	return m.err
}

func (m *memSaver) last() Snapshot { return m.saves[len(m.saves)-1] }

func newTestState(t *testing.T) (*State, *memSaver) {
	t.Helper()
	saver := &memSaver{}
	st := NewState(DefaultSnapshot(), saver, nil)
	n := 0
	st.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return st, saver
}

func TestAddAppendsAndSaves(t *testing.T) {
	st, saver := newTestState(t)

	a, ok := st.Add("07:00", "  wake up ", true)
	require.True(t, ok)
	assert.Equal(t, "id-1", a.ID)
	assert.Equal(t, "wake up", a.Label)
	assert.True(t, a.Enabled)
	assert.Nil(t, a.LastFiredDay)

	_, ok = st.Add("08:00", "", false)
	require.True(t, ok)

	require.Len(t, saver.saves, 2)
	assert.Len(t, saver.last().Alarms, 2)
	assert.Equal(t, []string{"07:00", "08:00"}, times(st.Alarms()))
}

func TestAddEmptyTimeIsNoop(t *testing.T) {
	st, saver := newTestState(t)

	_, ok := st.Add("", "label", true)
	assert.False(t, ok)
	_, ok = st.Add("   ", "label", true)
	assert.False(t, ok)

	assert.Zero(t, st.Len())
	assert.Empty(t, saver.saves)
}

func TestDeleteAndToggleUnknownIDs(t *testing.T) {
	st, saver := newTestState(t)
	a, _ := st.Add("07:00", "", true)
	saves := len(saver.saves)

	assert.False(t, st.Delete("nope"))
	assert.False(t, st.Toggle("nope"))
	assert.Len(t, saver.saves, saves)

	assert.True(t, st.Toggle(a.ID))
	got, _ := st.Get(a.ID)
	assert.False(t, got.Enabled)

	assert.True(t, st.Delete(a.ID))
	assert.Zero(t, st.Len())
	assert.Len(t, saver.saves, saves+2)
}

func TestSnoozeQuirks(t *testing.T) {
	st, _ := newTestState(t)
	a, _ := st.Add("07:00", "", true)
	st.MarkFired(a.ID, "Sun Oct 18 2026")

	now := time.Date(2026, 10, 18, 7, 0, 42, 0, time.Local)
	s, ok := st.Snooze(a.ID, now, DefaultSnooze)
	require.True(t, ok)
	assert.Equal(t, "07:05", s.Time)
	assert.Nil(t, s.LastFiredDay)
	assert.Equal(t, "Alarm (Snooze)", s.Label)

	s, _ = st.Snooze(a.ID, now.Add(5*time.Minute), DefaultSnooze)
	assert.Equal(t, "07:10", s.Time)
	assert.Equal(t, "Alarm (Snooze) (Snooze)", s.Label)
}

func TestSnoozeCrossesMidnight(t *testing.T) {
	st, _ := newTestState(t)
	a, _ := st.Add("23:58", "late", true)

	s, ok := st.Snooze(a.ID, time.Date(2026, 10, 18, 23, 58, 10, 0, time.Local), DefaultSnooze)
	require.True(t, ok)
	assert.Equal(t, "00:03", s.Time)
}

func TestSaveErrorsAreSwallowed(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	st := NewState(DefaultSnapshot(), saver, nil)

	_, ok := st.Add("07:00", "", true)
	assert.True(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestSavedSnapshotIsDetached(t *testing.T) {
	st, saver := newTestState(t)
	a, _ := st.Add("07:00", "", true)

	st.Toggle(a.ID)
	assert.True(t, saver.saves[0].Alarms[0].Enabled)
	assert.False(t, saver.saves[1].Alarms[0].Enabled)
}

func TestChangesCoalesce(t *testing.T) {
	st, _ := newTestState(t)
	st.Add("07:00", "", true)
	st.Add("08:00", "", true)
	st.SetUse24h(true)

	select {
	case <-st.Changes():
	default:
		t.Fatal("expected a change notice")
	}
	select {
	case <-st.Changes():
		t.Fatal("notices should coalesce")
	default:
	}
	assert.True(t, st.Use24h())
}

func TestNilAlarmsNormalised(t *testing.T) {
	st := NewState(Snapshot{Use24h: true}, nil, nil)
	assert.NotNil(t, st.Alarms())
	assert.NotNil(t, st.Snapshot().Alarms)
}

func times(as []Alarm) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Time
	}
	return out
}
