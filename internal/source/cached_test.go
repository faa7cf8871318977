package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyeonlab/contest-board/internal/types"
)

// countingAccessor counts calls and can be switched to fail.
type countingAccessor struct {
	calls int
	fail  bool
}

func (a *countingAccessor) Contests(_ context.Context) ([]types.Contest, error) {
	a.calls++
	if a.fail {
		return nil, errors.New("feed down")
	}
	return []types.Contest{{ID: "c1", Title: "t", Deadline: "2024-06-20"}}, nil
}

func TestCachedServesFromCacheWithinTTL(t *testing.T) {
	inner := &countingAccessor{}
	cached := NewCached(inner, time.Minute)

	ctx := context.Background()
	first, err := cached.Contests(ctx)
	require.NoError(t, err)
	second, err := cached.Contests(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second call must hit the cache")
}

func TestCachedInvalidateForcesRefetch(t *testing.T) {
	inner := &countingAccessor{}
	cached := NewCached(inner, time.Minute)

	ctx := context.Background()
	_, err := cached.Contests(ctx)
	require.NoError(t, err)

	cached.Invalidate()

	_, err = cached.Contests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedServesStaleOnRefreshFailure(t *testing.T) {
	inner := &countingAccessor{}
	cached := NewCached(inner, time.Minute)

	ctx := context.Background()
	_, err := cached.Contests(ctx)
	require.NoError(t, err)

	inner.fail = true
	contests, err := cached.Refresh(ctx)

	require.NoError(t, err, "stale data beats an empty page")
	assert.Len(t, contests, 1)
}

func TestCachedFailsWhenNothingCached(t *testing.T) {
	inner := &countingAccessor{fail: true}
	cached := NewCached(inner, time.Minute)

	_, err := cached.Contests(context.Background())
	assert.Error(t, err)
}

func TestCachedReturnsCopies(t *testing.T) {
	inner := &countingAccessor{}
	cached := NewCached(inner, time.Minute)

	ctx := context.Background()
	first, err := cached.Contests(ctx)
	require.NoError(t, err)

	first[0].Title = "mutated"

	second, err := cached.Contests(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", second[0].Title, "callers must not be able to mutate the cache")
}
