package service

import (
	"context"

	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
)

// StoreService handles the store identity printed on every document
type StoreService struct {
	storeRepo repository.StoreProfileRepository
	defaults  entity.StoreProfile
}

// NewStoreService creates a new store service. defaults are used until a profile
// has been saved.
func NewStoreService(storeRepo repository.StoreProfileRepository, defaults entity.StoreProfile) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		defaults:  defaults,
	}
}

// Profile returns the saved store profile, or the configured defaults
func (s *StoreService) Profile(ctx context.Context) (entity.StoreProfile, error) {
	profile, err := s.storeRepo.Get(ctx)
	if err != nil {
		return entity.StoreProfile{}, err
	}
	if profile == nil {
		return s.defaults, nil
	}
	return *profile, nil
}

// UpdateStoreInput represents the input for updating the store profile
type UpdateStoreInput struct {
	Name               string
	Address            string
	Phone              string
	NTN                string
	ReceiptFooter      string
	ConfirmationFooter string
}

// UpdateProfile saves the store profile, creating it on first use
func (s *StoreService) UpdateProfile(ctx context.Context, input *UpdateStoreInput) (*entity.StoreProfile, error) {
	profile, err := s.storeRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	create := profile == nil
	if create {
		profile = &entity.StoreProfile{}
	}

	profile.Name = input.Name
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.NTN = input.NTN
	profile.ReceiptFooter = input.ReceiptFooter
	profile.ConfirmationFooter = input.ConfirmationFooter

	if create {
		if err := s.storeRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.storeRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
