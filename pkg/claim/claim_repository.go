package claim

import (
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id string) (*entities.Claim, error)
		GetClaimByFoodAndRequester(ctx context.Context, foodID, requesterID string) (*entities.Claim, error)
		GetClaimsByRequester(ctx context.Context, requesterID string) ([]*entities.Claim, error)
		GetClaimsByFoodOwner(ctx context.Context, ownerID string) ([]*entities.Claim, error)
		ApproveClaim(ctx context.Context, claimID, foodID string) error
		UpdateClaimStatus(ctx context.Context, claimID, status string) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("RequestedBy").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaimByFoodAndRequester(ctx context.Context, foodID, requesterID string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Where("food_id = ? AND requested_by_id = ?", foodID, requesterID).
		First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaimsByRequester(ctx context.Context, requesterID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("requested_by_id = ?", requesterID).
		Order("requested_at desc").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) GetClaimsByFoodOwner(ctx context.Context, ownerID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Joins("JOIN foods ON foods.id = claims.food_id").
		Where("foods.owner_id = ?", ownerID).
		Preload("Food").
		Preload("RequestedBy").
		Order("claims.requested_at desc").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// ApproveClaim flips the claim and its food in a single transaction; an
// approved claim must never be observable against a still-available food.
func (r *claimRepository) ApproveClaim(ctx context.Context, claimID, foodID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Claim{}).
			Where("id = ?", claimID).
			Update("status", "APROBAT").Error; err != nil {
			return err
		}
		return tx.Model(&entities.Food{}).
			Where("id = ?", foodID).
			Update("status", "REZERVAT").Error
	})
}

func (r *claimRepository) UpdateClaimStatus(ctx context.Context, claimID, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Claim{}).
		Where("id = ?", claimID).
		Update("status", status).Error
}
