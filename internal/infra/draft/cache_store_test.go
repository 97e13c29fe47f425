package draft

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tourist/internal/domain/entity"
	"tourist/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) *cacheStore {
	return newCacheStore(ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCacheStore_SaveTake(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute)
	draft := &entity.PlanDraft{Token: uuid.New(), UserID: uuid.New(), Destination: "Goa", NumDays: 2}

	require.NoError(t, store.SaveDraft(ctx, draft))

	taken, err := store.TakeDraft(ctx, draft.UserID, draft.Token)
	require.NoError(t, err)
	assert.Same(t, draft, taken)

	_, err = store.TakeDraft(ctx, draft.UserID, draft.Token)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}

func TestCacheStore_TakeDraft_OtherUserLeavesDraft(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute)
	draft := &entity.PlanDraft{Token: uuid.New(), UserID: uuid.New()}
	require.NoError(t, store.SaveDraft(ctx, draft))

	taken, err := store.TakeDraft(ctx, uuid.New(), draft.Token)
	assert.Nil(t, taken)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)

	taken, err = store.TakeDraft(ctx, draft.UserID, draft.Token)
	require.NoError(t, err)
	assert.Same(t, draft, taken)
}

func TestCacheStore_TakeDraft_ConcurrentTakesSucceedOnce(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute)
	draft := &entity.PlanDraft{Token: uuid.New(), UserID: uuid.New()}
	require.NoError(t, store.SaveDraft(ctx, draft))

	const callers = 16
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.TakeDraft(ctx, draft.UserID, draft.Token); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestCacheStore_TakeDraft_Expired(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(20 * time.Millisecond)
	draft := &entity.PlanDraft{Token: uuid.New(), UserID: uuid.New()}
	require.NoError(t, store.SaveDraft(ctx, draft))

	time.Sleep(50 * time.Millisecond)

	_, err := store.TakeDraft(ctx, draft.UserID, draft.Token)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}
