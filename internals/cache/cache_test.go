package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetWithinTTL(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Set("k", 42, 200*time.Millisecond)

	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, s.Has("k"))
}

func TestEntryExpires(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Set("k", "v", 30*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.False(t, s.Has("k"))
}

func TestSetOverwritesValueAndDeadline(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Set("k", "old", 20*time.Millisecond)
	s.Set("k", "new", 300*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestGetOrSetComputesOnce(t *testing.T) {
	s := New(0)
	defer s.Close()

	calls := 0
	compute := func(ctx context.Context) (interface{}, error) {
		calls++
		return "computed", nil
	}

	v, err := s.GetOrSet(context.Background(), "k", compute, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "computed", v)

	v, err = s.GetOrSet(context.Background(), "k", compute, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "computed", v)
	assert.Equal(t, 1, calls)
}

func TestGetOrSetFailureNotCached(t *testing.T) {
	s := New(0)
	defer s.Close()

	boom := errors.New("upstream down")
	calls := 0
	failing := func(ctx context.Context) (interface{}, error) {
		calls++
		return nil, boom
	}

	_, err := s.GetOrSet(context.Background(), "k", failing, time.Second)
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Has("k"))

	// next call retries the computation
	_, err = s.GetOrSet(context.Background(), "k", failing, time.Second)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)

	// and a succeeding compute populates normally afterwards
	v, err := s.GetOrSet(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
		return 7, nil
	}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestInvalidatePattern(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Set("homepage:series:1", 1, time.Minute)
	s.Set("homepage:series:2", 2, time.Minute)
	s.Set("homepage:full", 3, time.Minute)
	s.Set("sitemap:xml", 4, time.Minute)

	n := s.InvalidatePattern("homepage:*")
	assert.Equal(t, 3, n)
	assert.False(t, s.Has("homepage:full"))
	assert.True(t, s.Has("sitemap:xml"))

	assert.Equal(t, 0, s.InvalidatePattern("homepage:*"))
}

func TestClearAndKeys(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Set("a", 1, time.Minute)
	s.Set("b", 2, time.Minute)
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())

	s.Clear()
	assert.Empty(t, s.Keys())
	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestStatsCountsHitsAndMisses(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Set("k", 1, time.Minute)
	s.Get("k")
	s.Get("k")
	s.Get("missing")

	st := s.GetStats()
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.InDelta(t, 2.0/3.0, st.HitRate, 1e-9)
	assert.Equal(t, 1, st.Size)
}

func TestJanitorEvicts(t *testing.T) {
	s := New(20 * time.Millisecond)
	defer s.Close()

	s.Set("k", 1, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	s.mu.RLock()
	_, still := s.entries["k"]
	s.mu.RUnlock()
	assert.False(t, still)
}
