package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/firehall/personnel-agent/internal/models"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// sessionKey is the single fixed key of the session row, distinct from the
// auto-increment collections.
const sessionKey = "currentUser"

// SessionStore persists the last authenticated user snapshot in a
// single-row table.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// SetCurrentUser overwrites the stored snapshot unconditionally.
// Last write wins.
func (s *SessionStore) SetCurrentUser(ctx context.Context, user *models.UserSnapshot) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, queryUpsertSession, sessionKey, data)
	return err
}

// GetCurrentUser returns the stored snapshot, or SessionNotFoundError when
// no user has logged in since the last clear.
func (s *SessionStore) GetCurrentUser(ctx context.Context) (*models.UserSnapshot, error) {
	row := s.db.QueryRowContext(ctx, queryGetSession, sessionKey)

	var data []byte
	err := row.Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewSessionNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	var user models.UserSnapshot
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ClearCurrentUser deletes the snapshot. Idempotent.
func (s *SessionStore) ClearCurrentUser(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, queryDeleteSession, sessionKey)
	return err
}
