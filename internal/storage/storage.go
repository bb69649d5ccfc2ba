// Package storage persists session snapshots so a simulation can be
// resumed later with identical trajectories.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/JimenezCarmona8063/MYXITECH/internal/engine"
)

// Storage is the session snapshot store.
type Storage interface {
	Ping(ctx context.Context) error
	Close() error

	// SaveSession stores a snapshot under its session ID.
	SaveSession(ctx context.Context, id uuid.UUID, snap *engine.SessionSnapshot) error

	// LoadSession returns the snapshot for a session, or nil when the
	// session does not exist.
	LoadSession(ctx context.Context, id uuid.UUID) (*engine.SessionSnapshot, error)

	// DeleteSession removes a saved session.
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
