package journal

import (
	"io"
	"os"
	"time"

	"github.com/vass-cornelius/kensho/pkg/prompt"
	"github.com/vass-cornelius/kensho/pkg/repository"
)

// UseCase provides journal capture and browse operations
type UseCase struct {
	repo   repository.Repository
	source prompt.Source
	output io.Writer
	now    func() time.Time
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithOutput sets the output writer
func WithOutput(w io.Writer) Option {
	return func(uc *UseCase) {
		uc.output = w
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// New creates a new journal UseCase instance. source may be nil for
// operations that never prompt.
func New(repo repository.Repository, source prompt.Source, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:   repo,
		source: source,
		output: os.Stdout,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
