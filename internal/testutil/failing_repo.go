package testutil

import (
	"context"

	"github.com/amercer/tally/internal/repository"
)

// FailingBlobRepo is a test BlobRepo that wraps a real repository and
// injects errors on demand. Reads and writes can fail independently,
// which enables silent-fallback tests at precise failure points.
type FailingBlobRepo struct {
	Inner   repository.BlobRepo
	GetErr  error
	PutErr  error
	PutCnt  int
	FailCnt int
}

func (r *FailingBlobRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.Inner.Get(ctx, key)
}

func (r *FailingBlobRepo) Put(ctx context.Context, key string, value []byte) error {
	r.PutCnt++
	if r.PutErr != nil {
		r.FailCnt++
		return r.PutErr
	}
	return r.Inner.Put(ctx, key, value)
}
