package food

import (
	"FoodShare-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFoodWithClaims(ctx context.Context, id string) error
		GetFoodsByOwner(ctx context.Context, ownerID string) ([]*entities.Food, error)
		GetAvailableFoods(ctx context.Context) ([]*entities.Food, error)
		GetFoodsByExpirationRange(ctx context.Context, ownerID string, startDate, endDate time.Time) ([]*entities.Food, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

// DeleteFoodWithClaims removes the food together with any claims that
// reference it, so an approved claim can never point at a vanished food.
func (r *foodRepository) DeleteFoodWithClaims(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", id).Delete(&entities.Claim{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Food{}).Error
	})
}

func (r *foodRepository) GetFoodsByOwner(ctx context.Context, ownerID string) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetAvailableFoods(ctx context.Context) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("status = ?", "DISPONIBIL").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodsByExpirationRange(ctx context.Context, ownerID string, startDate, endDate time.Time) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND expiration_date BETWEEN ? AND ? AND status <> ?",
			ownerID, startDate, endDate, "CONSUMAT").
		Order("expiration_date asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
