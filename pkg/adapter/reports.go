package adapter

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// ReportStore is the interface for archived report storage
type ReportStore interface {
	// Put returns a writer to save a report under the given key
	Put(ctx context.Context, key string) (io.WriteCloser, error)
	// Get loads an archived report
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// reportStore implements ReportStore on the local filesystem
type reportStore struct {
	dir string
}

// NewReportStore creates a report store rooted at dir
func NewReportStore(dir string) (ReportStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, goerr.Wrap(err, "failed to create report directory", goerr.V("dir", dir))
	}

	return &reportStore{dir: dir}, nil
}

func (s *reportStore) Put(ctx context.Context, key string) (io.WriteCloser, error) {
	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create report file", goerr.V("key", key))
	}
	return f, nil
}

func (s *reportStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read report", goerr.V("key", key))
	}
	return f, nil
}
