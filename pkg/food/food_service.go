package food

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest, userID string) (domain.FoodResponse, error)
		GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error)
		GetAvailableFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetExpiringFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string, userID string) error
		UpdateFoodStatus(ctx context.Context, id string, req domain.UpdateFoodStatusRequest, userID string) (domain.FoodResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:             food.ID.String(),
		OwnerID:        food.OwnerID.String(),
		Name:           food.Name,
		Category:       food.Category,
		Quantity:       food.Quantity,
		ExpirationDate: food.ExpirationDate,
		Status:         food.Status,
		ImageURL:       food.ImageURL,
		CreatedAt:      food.CreatedAt,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest, userID string) (domain.FoodResponse, error) {
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrInvalidExpirationDate
	}

	if req.Quantity <= 0 {
		return domain.FoodResponse{}, domain.ErrInvalidQuantity
	}

	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	food := &entities.Food{
		ID:             uuid.New(),
		OwnerID:        ownerUUID,
		Name:           req.Name,
		Category:       req.Category,
		Quantity:       req.Quantity,
		ExpirationDate: expirationDate,
		Status:         domain.FoodStatusAvailable,
	}

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoodsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodResponse
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}

	return response, nil
}

func (s *foodService) GetAvailableFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetAvailableFoods(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodResponse
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}

	return response, nil
}

func (s *foodService) GetExpiringFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error) {
	today := time.Now()
	threeDaysFromNow := today.AddDate(0, 0, 3)

	foods, err := s.foodRepository.GetFoodsByExpirationRange(ctx, userID, today, threeDaysFromNow)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodResponse
	for _, food := range foods {
		response = append(response, toFoodResponse(food))
	}

	return response, nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if food.OwnerID.String() != userID {
		return domain.FoodResponse{}, domain.ErrNotFoodOwner
	}

	if req.Name != "" {
		food.Name = req.Name
	}

	if req.Category != "" {
		food.Category = req.Category
	}

	if req.Quantity > 0 {
		food.Quantity = req.Quantity
	}

	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.FoodResponse{}, domain.ErrInvalidExpirationDate
		}
		if expirationDate.Before(time.Now()) {
			return domain.FoodResponse{}, domain.ErrExpirationDateInPast
		}
		food.ExpirationDate = expirationDate
	}

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, userID string) error {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if food.OwnerID.String() != userID {
		return domain.ErrNotFoodOwner
	}

	if food.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(food.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodWithClaims(ctx, id)
}

func (s *foodService) UpdateFoodStatus(ctx context.Context, id string, req domain.UpdateFoodStatusRequest, userID string) (domain.FoodResponse, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if food.OwnerID.String() != userID {
		return domain.FoodResponse{}, domain.ErrNotFoodOwner
	}

	// Expired food cannot go back on offer.
	if req.Status == domain.FoodStatusAvailable && food.ExpirationDate.Before(time.Now()) {
		return domain.FoodResponse{}, domain.ErrExpiredFoodUnavailable
	}

	food.Status = req.Status

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return toFoodResponse(food), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	food, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if food.OwnerID.String() != userID {
		return domain.ErrNotFoodOwner
	}

	fileName := fmt.Sprintf("food-%s", food.ID.String())
	var objectKey string
	var uploadErr error

	if food.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(food.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	food.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return s.foodRepository.UpdateFood(ctx, food)
}
