package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Storage keys mirror the dashboard's historical localStorage layout:
// two preference keys plus one "Applied: <company>" key per tracked
// company. There is no further namespacing, and applied keys that no
// longer match a listed company are ignored rather than cleaned up.
const (
	KeyDarkMode = "dark-mode"
	KeyFlipped  = "flipped"

	appliedKeyPrefix = "Applied: "

	ValueYes = "yes"
	ValueNo  = "no"
)

// Get returns the stored value for key, or "" when the key is absent.
func (d *DB) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := d.Pool.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (d *DB) Set(ctx context.Context, key, value string) error {
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO kv(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	return err
}

// GetBool reads a yes/no key; any value other than "yes" reads false.
func (d *DB) GetBool(ctx context.Context, key string) (bool, error) {
	v, err := d.Get(ctx, key)
	return v == ValueYes, err
}

func (d *DB) SetBool(ctx context.Context, key string, b bool) error {
	v := ValueNo
	if b {
		v = ValueYes
	}
	return d.Set(ctx, key, v)
}

// SetApplied persists the applied flag for one normalized company name.
// A single key write; independent of every other company.
func (d *DB) SetApplied(ctx context.Context, company string, applied bool) error {
	return d.SetBool(ctx, appliedKeyPrefix+company, applied)
}

// Applied reports the persisted flag for one company, defaulting false.
func (d *DB) Applied(ctx context.Context, company string) (bool, error) {
	return d.GetBool(ctx, appliedKeyPrefix+company)
}

// AppliedFlags loads every applied=yes flag keyed by company name. The
// view derivation consults this map; names with no entry stay false.
func (d *DB) AppliedFlags(ctx context.Context) (map[string]bool, error) {
	rows, err := d.Pool.QueryContext(ctx, `
SELECT key FROM kv WHERE key LIKE ? AND value = ?;`, appliedKeyPrefix+"%", ValueYes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flags := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		flags[strings.TrimPrefix(key, appliedKeyPrefix)] = true
	}
	return flags, rows.Err()
}
