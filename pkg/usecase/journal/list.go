package journal

import (
	"context"

	"github.com/vass-cornelius/kensho/pkg/model"
)

// ListOptions controls how entries are listed.
type ListOptions struct {
	// IncludeHistory keeps every recorded revision instead of resolving
	// duplicate (date, kind) pairs to the most recent one.
	IncludeHistory bool
}

// List returns the entries of period. Without IncludeHistory the result is
// collapsed to the latest revision per (date, kind), ordered by date.
func (uc *UseCase) List(ctx context.Context, period model.Period, opts ListOptions) ([]*model.Entry, error) {
	entries, err := uc.repo.EntriesInRange(ctx, period)
	if err != nil {
		return nil, err
	}

	if opts.IncludeHistory {
		return entries, nil
	}

	return model.Collapse(entries), nil
}
