// Package store reads and writes the alarm snapshot as one JSON document in a
// key-value store. Reads never fail: anything unreadable becomes the default
// snapshot.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ramanasai/chime/internal/alarm"
)

// Key is the single entry the snapshot lives under.
const Key = "clockapp:v1"

// KV is the key-value surface the store needs; *db.KV satisfies it.
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// Store is an alarm.Saver backed by a KV.
type Store struct {
	kv     KV
	key    string
	logger *log.Logger
}

func New(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{kv: kv, key: Key, logger: logger}
}

// Load returns the persisted snapshot, or the default one when the entry is
// absent, unreadable or not valid JSON.
func (s *Store) Load() alarm.Snapshot {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Warn("read snapshot, using defaults", "err", err)
		return alarm.DefaultSnapshot()
	}
	if !ok {
		return alarm.DefaultSnapshot()
	}
	snap, err := Decode([]byte(raw))
	if err != nil {
		s.logger.Warn("corrupt snapshot, using defaults", "err", err)
		return alarm.DefaultSnapshot()
	}
	return snap
}

// Save writes the whole snapshot. Last write wins.
func (s *Store) Save(snap alarm.Snapshot) error {
	b, err := Encode(snap)
	if err != nil {
		return err
	}
	return s.kv.Put(s.key, string(b))
}

// Decode parses a snapshot document. A missing or null alarm list decodes
// to an empty one.
func Decode(raw []byte) (alarm.Snapshot, error) {
	var snap alarm.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return alarm.DefaultSnapshot(), fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Alarms == nil {
		snap.Alarms = []alarm.Alarm{}
	}
	return snap, nil
}

// Encode renders a snapshot document.
func Encode(snap alarm.Snapshot) ([]byte, error) {
	if snap.Alarms == nil {
		snap.Alarms = []alarm.Alarm{}
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// MemKV is an in-process KV, used when no database is wanted.
type MemKV struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{m: map[string]string{}}
}

func (k *MemKV) Get(key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *MemKV) Put(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = value
	return nil
}
