package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending  = "IN ASTEPTARE"
	ClaimStatusApproved = "APROBAT"
	ClaimStatusRejected = "RESPINS"
)

var (
	MessageSuccessCreateClaim  = "claim created successfully"
	MessageSuccessGetClaims    = "claims retrieved successfully"
	MessageSuccessApproveClaim = "claim approved successfully"
	MessageSuccessRejectClaim  = "claim rejected successfully"

	MessageFailedCreateClaim  = "failed to create claim"
	MessageFailedGetClaims    = "failed to retrieve claims"
	MessageFailedApproveClaim = "failed to approve claim"
	MessageFailedRejectClaim  = "failed to reject claim"

	ErrClaimNotFound      = errors.New("claim not found")
	ErrClaimOwnFood       = errors.New("cannot claim your own food")
	ErrFoodNotAvailable   = errors.New("food not available")
	ErrClaimAlreadyExists = errors.New("claim already exists for this food")
	ErrNotClaimResolver   = errors.New("no permission to resolve this claim")
)

type (
	ClaimResponse struct {
		ID          string        `json:"id"`
		FoodID      string        `json:"food_id"`
		Status      string        `json:"status"`
		RequestedAt time.Time     `json:"requested_at"`
		Food        *FoodResponse `json:"food,omitempty"`
	}

	ReceivedClaimResponse struct {
		ID          string        `json:"id"`
		FoodID      string        `json:"food_id"`
		Status      string        `json:"status"`
		RequestedAt time.Time     `json:"requested_at"`
		Food        *FoodResponse `json:"food,omitempty"`
		RequestedBy *UserResponse `json:"requested_by,omitempty"`
	}
)
