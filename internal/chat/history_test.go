package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndRecent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := store.Append(ctx, "conv", Turn{
			Query:     fmt.Sprintf("q%d", i),
			Response:  fmt.Sprintf("r%d", i),
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	turns, err := store.Recent(ctx, "conv", 0)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "q0", turns[0].Query)
	assert.Equal(t, "q2", turns[2].Query)

	turns, err = store.Recent(ctx, "conv", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "q1", turns[0].Query)
}

func TestMemoryStoreCapsHistory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < maxHistoryTurns+5; i++ {
		require.NoError(t, store.Append(ctx, "conv", Turn{Query: fmt.Sprintf("q%d", i)}))
	}

	turns, err := store.Recent(ctx, "conv", 0)
	require.NoError(t, err)
	require.Len(t, turns, maxHistoryTurns)
	assert.Equal(t, "q5", turns[0].Query)
	assert.Equal(t, fmt.Sprintf("q%d", maxHistoryTurns+4), turns[len(turns)-1].Query)
}

func TestMemoryStoreConversationsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "a", Turn{Query: "from a"}))
	require.NoError(t, store.Append(ctx, "b", Turn{Query: "from b"}))

	turns, err := store.Recent(ctx, "a", 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "from a", turns[0].Query)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "conv", Turn{Query: "q"}))
	require.NoError(t, store.Clear(ctx, "conv"))

	turns, err := store.Recent(ctx, "conv", 0)
	require.NoError(t, err)
	assert.Empty(t, turns)
}
