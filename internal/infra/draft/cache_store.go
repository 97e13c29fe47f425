// Package draft keeps generated itineraries in memory until they are saved or expire.
package draft

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tourist/config"
	"tourist/internal/domain/entity"
	"tourist/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

// Params holds dependencies for the draft store, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type cacheStore struct {
	mu     sync.Mutex
	drafts *cache.Cache
	logger *slog.Logger
}

// NewCacheStore creates a draft repository whose entries expire after the configured TTL.
func NewCacheStore(params Params) repository.DraftRepository {
	ttl := params.Config.ItinerarySettings().DraftTTL

	return newCacheStore(ttl, params.Logger)
}

func newCacheStore(ttl time.Duration, logger *slog.Logger) *cacheStore {
	return &cacheStore{
		drafts: cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (s *cacheStore) SaveDraft(ctx context.Context, draft *entity.PlanDraft) error {
	s.drafts.Set(draft.Token.String(), draft, cache.DefaultExpiration)
	s.logger.DebugContext(ctx, "Draft stored",
		slog.String("token", draft.Token.String()),
		slog.String("user_id", draft.UserID.String()),
	)

	return nil
}

// TakeDraft hands the draft to the user who generated it and forgets it. Another
// user's token leaves the draft in place.
func (s *cacheStore) TakeDraft(ctx context.Context, userID, token uuid.UUID) (*entity.PlanDraft, error) {
	key := token.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	cached, found := s.drafts.Get(key)
	if !found {
		return nil, repository.ErrDraftNotFound
	}
	draft, ok := cached.(*entity.PlanDraft)
	if !ok || draft.UserID != userID {
		return nil, repository.ErrDraftNotFound
	}
	s.drafts.Delete(key)

	s.logger.DebugContext(ctx, "Draft taken", slog.String("token", key))

	return draft, nil
}

// Module provides the draft FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCacheStore),
)
