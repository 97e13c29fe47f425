package repository

import (
	"context"

	"tourist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDraftNotFound is returned when a draft is unknown, expired, or owned by someone else.
var ErrDraftNotFound = errors.New("plan draft not found")

// DraftRepository keeps generated plans until they are saved or expire.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft *entity.PlanDraft) error
	// TakeDraft removes and returns the user's draft. Concurrent takes of one token
	// succeed at most once.
	TakeDraft(ctx context.Context, userID, token uuid.UUID) (*entity.PlanDraft, error)
}
