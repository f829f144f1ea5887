package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound: a slug failed to resolve at some level of the
	// hierarchy. Recoverable per navigation, never escalated.
	ErrNotFound = errors.New("guide: not found")
	// ErrLoadFailed: the dataset fetch or parse failed. Terminal for the
	// session; surfaced as the Error route.
	ErrLoadFailed = errors.New("guide: dataset load failed")
)

// DatasetSource fetches the raw dataset from its well-known location.
// The value is the decoded JSON document (object or array); shape
// normalization happens at the load boundary, not here.
type DatasetSource interface {
	Fetch(ctx context.Context) (any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
