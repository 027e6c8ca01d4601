package roster

import (
	"context"
	"errors"
)

// ErrSourceNotFound is returned by Load when the snapshot does not exist yet.
var ErrSourceNotFound = errors.New("roster source not found")

// Repository exchanges complete roster snapshots with persistent storage.
type Repository interface {
	Load(ctx context.Context) (*Roster, error)
	Save(ctx context.Context, r *Roster) error
	// Source names the snapshot Load reads, for operator messages.
	Source() string
}
