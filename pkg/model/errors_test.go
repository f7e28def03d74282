package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/vass-cornelius/kensho/pkg/model"
)

func TestSummarizeReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth", model.ErrSummarizeAuth, "AUTH"},
		{"network", model.ErrSummarizeNetwork, "NETWORK"},
		{"quota", model.ErrSummarizeQuota, "QUOTA"},
		{"malformed", model.ErrSummarizeMalformed, "MALFORMED_RESPONSE"},
		{"unknown", model.ErrSummarizeUnknown, "UNKNOWN"},
		{"wrapped auth", goerr.Wrap(model.ErrSummarizeAuth, "API key not valid"), "AUTH"},
		{"twice wrapped quota", goerr.Wrap(goerr.Wrap(model.ErrSummarizeQuota, "429"), "summary failed"), "QUOTA"},
		{"unrelated error", errors.New("disk full"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.V(t, model.SummarizeReason(tt.err)).Equal(tt.want)
		})
	}
}
