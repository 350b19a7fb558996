// Package store persists the whole application state as a single JSON blob
// under one storage key, mirroring how the client app keeps its state in
// on-device storage.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mfortin/shopshelf/internal/domain"
)

const stateKey = "shopshelf/state"

type StateStore struct {
	db *sql.DB
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db}
}

// Load reads the persisted state. It returns nil when nothing has been saved
// yet; callers seed in that case.
func (s *StateStore) Load(ctx context.Context) (*domain.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM app_state WHERE key = ?
	`, stateKey).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	state := &domain.State{}
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return state, nil
}

// Save writes the whole state back under the single storage key.
func (s *StateStore) Save(ctx context.Context, state *domain.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, stateKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
