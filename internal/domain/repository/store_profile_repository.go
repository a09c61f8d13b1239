package repository

import (
	"context"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
)

// StoreProfileRepository defines the interface for store identity data access
type StoreProfileRepository interface {
	// Get returns the store profile, or nil when none has been saved yet
	Get(ctx context.Context) (*entity.StoreProfile, error)
	Create(ctx context.Context, profile *entity.StoreProfile) error
	Update(ctx context.Context, profile *entity.StoreProfile) error
}
