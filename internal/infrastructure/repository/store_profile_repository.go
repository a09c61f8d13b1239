package repository

import (
	"context"
	"errors"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
	"gorm.io/gorm"
)

type storeProfileRepository struct {
	db *gorm.DB
}

// NewStoreProfileRepository creates a new store profile repository
func NewStoreProfileRepository(db *gorm.DB) repository.StoreProfileRepository {
	return &storeProfileRepository{db: db}
}

// Get retrieves the store profile; there is at most one
func (r *storeProfileRepository) Get(ctx context.Context) (*entity.StoreProfile, error) {
	var profile entity.StoreProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create creates the store profile
func (r *storeProfileRepository) Create(ctx context.Context, profile *entity.StoreProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update updates the store profile
func (r *storeProfileRepository) Update(ctx context.Context, profile *entity.StoreProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
