// Package formstate keeps the last-used inputs of each calculator per
// anonymous client. It is a convenience for the UI layer; the calculators
// never depend on it.
package formstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound is returned by Get when nothing is stored under the key.
	ErrNotFound = errors.New("form state not found")
	// ErrInvalidPayload is returned by Put for payloads that are not a JSON object.
	ErrInvalidPayload = errors.New("form state payload must be a JSON object")
	// ErrInvalidKey is returned for empty or malformed keys.
	ErrInvalidKey = errors.New("invalid form state key")
)

const maxPayloadBytes = 16 << 10

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Key identifies one stored blob.
type Key struct {
	ClientID   string
	Calculator string
}

func (k Key) validate() error {
	if k.ClientID == "" || len(k.ClientID) > 64 || !keyPattern.MatchString(k.Calculator) {
		return fmt.Errorf("%w: %q/%q", ErrInvalidKey, k.ClientID, k.Calculator)
	}
	return nil
}

// Store is the key-value capability owned by the UI layer.
type Store interface {
	Get(ctx context.Context, key Key) (json.RawMessage, error)
	Put(ctx context.Context, key Key, payload json.RawMessage) error
	Update(ctx context.Context, key Key, fn UpdateFunc) error
	Delete(ctx context.Context, key Key) error
}

// UpdateFunc derives a new payload from the current one, which is nil when
// nothing usable is stored.
type UpdateFunc func(current json.RawMessage) (json.RawMessage, error)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQLStore is a Store backed by the form_state table.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore returns a Store using db.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get returns the stored payload. A stored blob that no longer decodes as a
// JSON object is treated as absent.
func (s *SQLStore) Get(ctx context.Context, key Key) (json.RawMessage, error) {
	if err := key.validate(); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM form_state WHERE client_id = ? AND calculator = ?
	`, key.ClientID, key.Calculator).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query form state: %w", err)
	}

	if !isJSONObject([]byte(payload)) {
		return nil, ErrNotFound
	}
	return json.RawMessage(payload), nil
}

// Put stores payload under key, replacing any previous value.
func (s *SQLStore) Put(ctx context.Context, key Key, payload json.RawMessage) error {
	if err := key.validate(); err != nil {
		return err
	}
	return upsert(ctx, s.db, key, payload)
}

// Update reads, transforms and stores the payload under key in one
// transaction, so concurrent updates of the same key are not lost.
func (s *SQLStore) Update(ctx context.Context, key Key, fn UpdateFunc) error {
	if err := key.validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin form state update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current json.RawMessage
	var payload string
	err = tx.QueryRowContext(ctx, `
		SELECT payload FROM form_state WHERE client_id = ? AND calculator = ?
	`, key.ClientID, key.Calculator).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("query form state: %w", err)
	case isJSONObject([]byte(payload)):
		current = json.RawMessage(payload)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}
	if err := upsert(ctx, tx, key, next); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit form state update: %w", err)
	}
	return nil
}

func upsert(ctx context.Context, db execer, key Key, payload json.RawMessage) error {
	if len(payload) > maxPayloadBytes || !isJSONObject(payload) {
		return ErrInvalidPayload
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO form_state (client_id, calculator, payload, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(client_id, calculator) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, key.ClientID, key.Calculator, string(payload))
	if err != nil {
		return fmt.Errorf("upsert form state: %w", err)
	}
	return nil
}

// Delete removes the payload stored under key. Deleting a missing key is not an error.
func (s *SQLStore) Delete(ctx context.Context, key Key) error {
	if err := key.validate(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM form_state WHERE client_id = ? AND calculator = ?
	`, key.ClientID, key.Calculator); err != nil {
		return fmt.Errorf("delete form state: %w", err)
	}
	return nil
}

func isJSONObject(b []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(b, &obj) == nil && obj != nil
}
