// Package prompt reads journal answers from the user.
package prompt

import (
	"context"

	"github.com/vass-cornelius/kensho/pkg/model"
)

// Source reads the answer to a single prompt. An empty answer is always
// acceptable; implementations must not validate content.
type Source interface {
	Ask(ctx context.Context, p model.Prompt) (string, error)
	Close() error
}
