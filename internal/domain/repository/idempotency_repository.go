package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pluscontrol/plus-control-api/internal/domain/entity"
)

//go:generate mockgen -source=idempotency_repository.go -destination=mocks/mock_idempotency_repository.go -package=mock_repository

// IdempotencyRepository stores responses of replay-protected requests per user.
type IdempotencyRepository interface {
	// GetByKey returns nil when the user never used key.
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// PurgeExpired deletes keys that expired before cutoff and returns how many went.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
