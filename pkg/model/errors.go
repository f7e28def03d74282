package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidKind  = goerr.New("invalid entry kind")
	ErrInvalidMonth = goerr.New("invalid month")
	ErrStoreWrite   = goerr.New("failed to write entry")

	ErrSummarizeAuth      = goerr.New("summarization failed: authentication")
	ErrSummarizeNetwork   = goerr.New("summarization failed: network")
	ErrSummarizeQuota     = goerr.New("summarization failed: quota exhausted")
	ErrSummarizeMalformed = goerr.New("summarization failed: malformed response")
	ErrSummarizeUnknown   = goerr.New("summarization failed: unknown")
)

// SummarizeReason maps a summarization error chain to its reason token
// (AUTH, NETWORK, QUOTA, MALFORMED_RESPONSE, UNKNOWN). Returns an empty
// string for errors outside the summarization taxonomy.
func SummarizeReason(err error) string {
	switch {
	case errors.Is(err, ErrSummarizeAuth):
		return "AUTH"
	case errors.Is(err, ErrSummarizeNetwork):
		return "NETWORK"
	case errors.Is(err, ErrSummarizeQuota):
		return "QUOTA"
	case errors.Is(err, ErrSummarizeMalformed):
		return "MALFORMED_RESPONSE"
	case errors.Is(err, ErrSummarizeUnknown):
		return "UNKNOWN"
	default:
		return ""
	}
}
