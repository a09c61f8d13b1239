package repository

import (
	"context"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and terminal ID
	GetByKey(ctx context.Context, key, terminalID string) (*entity.IdempotencyKey, error)
	// Create stores the response for a key, replacing an expired one
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes expired keys and reports how many were removed
	DeleteExpired(ctx context.Context) (int64, error)
}
