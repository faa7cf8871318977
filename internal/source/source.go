// Package source supplies contest records to the rest of the system. The
// classifier and projector never reach into ambient storage; they take a
// contest slice that one of this package's accessors produced.
//
// Three accessors compose into the usual stack: a remote feed client, a
// TTL cache around it, and a bundled fallback dataset that keeps the site
// alive when no feed is configured or every fetch fails.
package source

import (
	"context"
	"fmt"

	"github.com/moyeonlab/contest-board/internal/types"
)

// Accessor is the single input interface between the data source and the
// core. Implementations must be safe for concurrent use.
type Accessor interface {
	Contests(ctx context.Context) ([]types.Contest, error)
}

// AccessorFunc adapts a function to the Accessor interface.
type AccessorFunc func(ctx context.Context) ([]types.Contest, error)

// Contests implements Accessor.
func (f AccessorFunc) Contests(ctx context.Context) ([]types.Contest, error) {
	return f(ctx)
}

// FeedError describes a failure while fetching or decoding one feed URL.
type FeedError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FeedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("feed error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("feed error for %s: %s", e.URL, e.Message)
}

func (e *FeedError) Unwrap() error {
	return e.Cause
}

// WithFallback returns an accessor that serves primary's contests and
// degrades to fallback when primary fails or comes back empty. Feed
// trouble must not take the listing down.
func WithFallback(primary, fallback Accessor) Accessor {
	return AccessorFunc(func(ctx context.Context) ([]types.Contest, error) {
		contests, err := primary.Contests(ctx)
		if err != nil || len(contests) == 0 {
			return fallback.Contests(ctx)
		}
		return contests, nil
	})
}
