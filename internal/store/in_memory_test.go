package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_CreateAndFind(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()

	// when
	created, err := s.Create(ctx, "Widget", 100, 5)

	// then
	require.NoError(t, err)
	assert.Equal(t, &Product{ID: 1, Name: "Widget", Cost: 100, Stock: 5}, created)

	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestInMemory_CreateDuplicateName(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()
	original, err := s.Create(ctx, "Widget", 100, 5)
	require.NoError(t, err)

	// when
	dup, err := s.Create(ctx, "Widget", 200, 1)

	// then
	assert.ErrorIs(t, err, perrors.ErrProductExists)
	assert.Nil(t, dup)
	found, err := s.FindByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original, found, "existing record must be unchanged")
}

func TestInMemory_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	_, err := s.Create(ctx, "Widget", 100, 5)
	require.NoError(t, err)

	_, err = s.FindByID(ctx, 99)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)

	_, err = s.Update(ctx, 99, 1, 1)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)

	err = s.DeleteByID(ctx, 99)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestInMemory_UpdateKeepsIdentity(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()
	created, err := s.Create(ctx, "Widget", 100, 5)
	require.NoError(t, err)

	// when
	updated, err := s.Update(ctx, created.ID, 150, 3)

	// then
	require.NoError(t, err)
	assert.Equal(t, &Product{ID: created.ID, Name: "Widget", Cost: 150, Stock: 3}, updated)
	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestInMemory_DeleteFreesNameButNotID(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()
	first, err := s.Create(ctx, "Widget", 100, 5)
	require.NoError(t, err)

	// when
	require.NoError(t, s.DeleteByID(ctx, first.ID))

	// then
	_, err = s.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	second, err := s.Create(ctx, "Widget", 1, 1)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID, "IDs are never reused")
}

func TestInMemory_FindAllEmptyIsNotNil(t *testing.T) {
	list, err := NewInMemoryStore().FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestInMemory_ListSizeTracksCreatesMinusDeletes(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	for i := range 10 {
		_, err := s.Create(ctx, fmt.Sprintf("item-%d", i), int64(i), int64(i))
		require.NoError(t, err)
	}
	for _, id := range []int64{2, 4, 6} {
		require.NoError(t, s.DeleteByID(ctx, id))
	}
	require.ErrorIs(t, s.DeleteByID(ctx, 4), perrors.ErrProductNotFound)

	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 7)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestInMemory_ConcurrentCreateSameName(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewInMemoryStore()
	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	// when
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, "Widget", 100, 5)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, perrors.ErrProductExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	// then
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}
