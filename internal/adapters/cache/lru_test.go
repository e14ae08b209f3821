package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCounts_GetSetInvalidate(t *testing.T) {
	c := NewLRUCounts(10, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetMany(ctx, map[string]int{"a": 3, "b": 0}))

	got, err := c.GetMany(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 3, "b": 0}, got)

	require.NoError(t, c.Invalidate(ctx, "a"))
	got, err = c.GetMany(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLRUCounts_Expires(t *testing.T) {
	c := NewLRUCounts(10, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.SetMany(ctx, map[string]int{"a": 1}))
	time.Sleep(60 * time.Millisecond)

	got, err := c.GetMany(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLRUCounts_EvictsOldest(t *testing.T) {
	c := NewLRUCounts(2, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetMany(ctx, map[string]int{"a": 1}))
	require.NoError(t, c.SetMany(ctx, map[string]int{"b": 2}))
	require.NoError(t, c.SetMany(ctx, map[string]int{"c": 3}))

	got, err := c.GetMany(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"b": 2, "c": 3}, got)
}
