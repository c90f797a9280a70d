package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// KV is a string key-value table on top of the sqlite database.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the value stored under key. ok is false when the key is absent.
func (k *KV) Get(key string) (value string, ok bool, err error) {
	err = k.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (k *KV) Put(key, value string) error {
	_, err := k.db.Exec(`
		INSERT INTO kv(key, value, updated_at)
		VALUES(?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv put %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (k *KV) Delete(key string) error {
	if _, err := k.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}
