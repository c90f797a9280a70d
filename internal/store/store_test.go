package store

import (
	"errors"
	"testing"

	"github.com/ramanasai/chime/internal/alarm"
	"github.com/ramanasai/chime/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenKV struct{}

func (brokenKV) Get(string) (string, bool, error) { return "", false, errors.New("io error") }
func (brokenKV) Put(string, string) error         { return errors.New("io error") }

func TestLoadFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
	}{
		{"absent", nil},
		{"invalid json", ptr("{not json")},
		{"wrong types", ptr(`{"use24h":"yes","alarms":[]}`)},
		{"alarms not a list", ptr(`{"use24h":true,"alarms":{}}`)},
		{"empty string", ptr("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemKV()
			if tt.raw != nil {
				require.NoError(t, kv.Put(Key, *tt.raw))
			}
			assert.Equal(t, alarm.DefaultSnapshot(), New(kv, nil).Load())
		})
	}

	assert.Equal(t, alarm.DefaultSnapshot(), New(brokenKV{}, nil).Load())
}

func TestLoadNormalisesMissingAlarms(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Put(Key, `{"use24h":true}`))

	snap := New(kv, nil).Load()
	assert.True(t, snap.Use24h)
	assert.NotNil(t, snap.Alarms)
	assert.Empty(t, snap.Alarms)

	require.NoError(t, kv.Put(Key, `null`))
	assert.Equal(t, alarm.DefaultSnapshot(), New(kv, nil).Load())
}

func TestReadsBrowserShapedDocument(t *testing.T) {
	kv := NewMemKV()
	doc := `{"use24h":false,"alarms":[
		{"id":"5b7c","time":"07:00","label":"","enabled":true,"lastFiredDay":"Sun Oct 18 2026"},
		{"id":"9a1e","time":"13:30","label":"lunch","enabled":false,"lastFiredDay":null}
	]}`
	require.NoError(t, kv.Put(Key, doc))

	snap := New(kv, nil).Load()
	require.Len(t, snap.Alarms, 2)
	assert.True(t, snap.Alarms[0].FiredOn("Sun Oct 18 2026"))
	assert.Nil(t, snap.Alarms[1].LastFiredDay)
	assert.Equal(t, "lunch", snap.Alarms[1].Label)
}

func TestEncodeKeepsNullMarker(t *testing.T) {
	b, err := Encode(alarm.Snapshot{Alarms: []alarm.Alarm{{ID: "x", Time: "07:00", Enabled: true}}})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"use24h":false,"alarms":[{"id":"x","time":"07:00","label":"","enabled":true,"lastFiredDay":null}]}`,
		string(b))

	b, err = Encode(alarm.Snapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"use24h":false,"alarms":[]}`, string(b))
}

func TestStateWritesThroughSqlite(t *testing.T) {
	dbh, err := db.Open(t.TempDir())
	require.NoError(t, err)
	defer dbh.Close()

	s := New(db.NewKV(dbh), nil)
	st := alarm.NewState(s.Load(), s, nil)
	a, ok := st.Add("06:45", "gym", true)
	require.True(t, ok)
	st.SetUse24h(true)
	st.MarkFired(a.ID, "Sun Oct 18 2026")

	reloaded := New(db.NewKV(dbh), nil).Load()
	assert.True(t, reloaded.Use24h)
	require.Len(t, reloaded.Alarms, 1)
	assert.Equal(t, a.ID, reloaded.Alarms[0].ID)
	assert.Equal(t, "gym", reloaded.Alarms[0].Label)
	assert.True(t, reloaded.Alarms[0].FiredOn("Sun Oct 18 2026"))
}

func TestCorruptRowInSqliteFallsBack(t *testing.T) {
	dbh, err := db.Open(t.TempDir())
	require.NoError(t, err)
	defer dbh.Close()

	kv := db.NewKV(dbh)
	require.NoError(t, kv.Put(Key, "]]"))
	assert.Equal(t, alarm.DefaultSnapshot(), New(kv, nil).Load())
}

func ptr(s string) *string { return &s }
