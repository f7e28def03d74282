package repository

import (
	"context"

	"github.com/vass-cornelius/kensho/pkg/model"
)

// Repository defines the interface for journal entry persistence
type Repository interface {
	// PutEntry appends a new entry revision. Stored revisions are never
	// updated or deleted.
	PutEntry(ctx context.Context, entry *model.Entry) error

	// EntriesInRange retrieves every entry revision whose date falls within
	// the period (inclusive), ordered by date then written_at ascending.
	EntriesInRange(ctx context.Context, period model.Period) ([]*model.Entry, error)

	// Close releases the underlying store
	Close() error
}
