package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusAvailable = "DISPONIBIL"
	FoodStatusReserved  = "REZERVAT"
	FoodStatusConsumed  = "CONSUMAT"
)

var (
	MessageSuccessAddFood          = "food added successfully"
	MessageSuccessUpdateFood       = "food updated successfully"
	MessageSuccessDeleteFood       = "food deleted successfully"
	MessageSuccessGetFoods         = "foods retrieved successfully"
	MessageSuccessUpdateFoodStatus = "food status updated successfully"
	MessageSuccessUploadFoodImage  = "food image uploaded successfully"

	MessageFailedAddFood          = "failed to add food"
	MessageFailedUpdateFood       = "failed to update food"
	MessageFailedDeleteFood       = "failed to delete food"
	MessageFailedGetFoods         = "failed to retrieve foods"
	MessageFailedUpdateFoodStatus = "failed to update food status"
	MessageFailedUploadFoodImage  = "failed to upload food image"

	ErrFoodNotFound           = errors.New("food not found")
	ErrNotFoodOwner           = errors.New("no permission to modify this food")
	ErrInvalidExpirationDate  = errors.New("invalid expiration date")
	ErrExpirationDateInPast   = errors.New("expiration date cannot be in the past")
	ErrExpiredFoodUnavailable = errors.New("expired food cannot be marked as available")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
)

type (
	AddFoodRequest struct {
		Name           string `json:"name" validate:"required"`
		Category       string `json:"category" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"required"`
	}

	UpdateFoodRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Category       string `json:"category" validate:"omitempty"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty"`
	}

	UpdateFoodStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=DISPONIBIL REZERVAT CONSUMAT"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodResponse struct {
		ID             string    `json:"id"`
		OwnerID        string    `json:"owner_id"`
		Name           string    `json:"name"`
		Category       string    `json:"category"`
		Quantity       int       `json:"quantity"`
		ExpirationDate time.Time `json:"expiration_date"`
		Status         string    `json:"status"`
		ImageURL       string    `json:"image_url,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
