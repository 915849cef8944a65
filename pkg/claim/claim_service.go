package claim

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/pkg/food"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"log"
	"time"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, foodID string, userID string) (domain.ClaimResponse, error)
		GetMyClaims(ctx context.Context, userID string) ([]domain.ClaimResponse, error)
		GetReceivedClaims(ctx context.Context, userID string) ([]domain.ReceivedClaimResponse, error)
		ApproveClaim(ctx context.Context, claimID string, userID string) (domain.ClaimResponse, error)
		RejectClaim(ctx context.Context, claimID string, userID string) (domain.ClaimResponse, error)
	}

	claimService struct {
		claimRepository ClaimRepository
		foodRepository  food.FoodRepository
	}
)

func NewClaimService(claimRepository ClaimRepository, foodRepository food.FoodRepository) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		foodRepository:  foodRepository,
	}
}

func toClaimResponse(claim *entities.Claim) domain.ClaimResponse {
	response := domain.ClaimResponse{
		ID:          claim.ID.String(),
		FoodID:      claim.FoodID.String(),
		Status:      claim.Status,
		RequestedAt: claim.RequestedAt,
	}

	if claim.Food != nil {
		response.Food = &domain.FoodResponse{
			ID:             claim.Food.ID.String(),
			OwnerID:        claim.Food.OwnerID.String(),
			Name:           claim.Food.Name,
			Category:       claim.Food.Category,
			Quantity:       claim.Food.Quantity,
			ExpirationDate: claim.Food.ExpirationDate,
			Status:         claim.Food.Status,
			ImageURL:       claim.Food.ImageURL,
			CreatedAt:      claim.Food.CreatedAt,
		}
	}

	return response
}

func (s *claimService) CreateClaim(ctx context.Context, foodID string, userID string) (domain.ClaimResponse, error) {
	foodItem, err := s.foodRepository.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimResponse{}, domain.ErrFoodNotFound
		}
		return domain.ClaimResponse{}, err
	}

	if foodItem.OwnerID.String() == userID {
		return domain.ClaimResponse{}, domain.ErrClaimOwnFood
	}

	if foodItem.Status != domain.FoodStatusAvailable {
		return domain.ClaimResponse{}, domain.ErrFoodNotAvailable
	}

	existing, err := s.claimRepository.GetClaimByFoodAndRequester(ctx, foodID, userID)
	if err != nil {
		return domain.ClaimResponse{}, err
	}
	if existing != nil {
		return domain.ClaimResponse{}, domain.ErrClaimAlreadyExists
	}

	requesterUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ClaimResponse{}, domain.ErrParseUUID
	}

	claim := &entities.Claim{
		ID:            uuid.New(),
		FoodID:        foodItem.ID,
		RequestedByID: requesterUUID,
		Status:        domain.ClaimStatusPending,
		RequestedAt:   time.Now(),
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return domain.ClaimResponse{}, err
	}

	return toClaimResponse(claim), nil
}

func (s *claimService) GetMyClaims(ctx context.Context, userID string) ([]domain.ClaimResponse, error) {
	claims, err := s.claimRepository.GetClaimsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.ClaimResponse
	for _, claim := range claims {
		response = append(response, toClaimResponse(claim))
	}

	return response, nil
}

func (s *claimService) GetReceivedClaims(ctx context.Context, userID string) ([]domain.ReceivedClaimResponse, error) {
	claims, err := s.claimRepository.GetClaimsByFoodOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.ReceivedClaimResponse
	for _, claim := range claims {
		base := toClaimResponse(claim)
		received := domain.ReceivedClaimResponse{
			ID:          base.ID,
			FoodID:      base.FoodID,
			Status:      base.Status,
			RequestedAt: base.RequestedAt,
			Food:        base.Food,
		}

		if claim.RequestedBy != nil {
			received.RequestedBy = &domain.UserResponse{
				ID:    claim.RequestedBy.ID.String(),
				Name:  claim.RequestedBy.Name,
				Email: claim.RequestedBy.Email,
				Role:  claim.RequestedBy.Role,
			}
		}

		response = append(response, received)
	}

	return response, nil
}

func (s *claimService) ApproveClaim(ctx context.Context, claimID string, userID string) (domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimResponse{}, domain.ErrClaimNotFound
		}
		return domain.ClaimResponse{}, err
	}

	if claim.Food == nil || claim.Food.OwnerID.String() != userID {
		return domain.ClaimResponse{}, domain.ErrNotClaimResolver
	}

	if err := s.claimRepository.ApproveClaim(ctx, claimID, claim.FoodID.String()); err != nil {
		return domain.ClaimResponse{}, err
	}

	claim.Status = domain.ClaimStatusApproved
	claim.Food.Status = domain.FoodStatusReserved

	s.notifyRequester(claim, "Your claim was approved",
		fmt.Sprintf("<p>Your claim for <b>%s</b> was approved. The food is now reserved for you.</p>", claim.Food.Name))

	return toClaimResponse(claim), nil
}

func (s *claimService) RejectClaim(ctx context.Context, claimID string, userID string) (domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClaimResponse{}, domain.ErrClaimNotFound
		}
		return domain.ClaimResponse{}, err
	}

	if claim.Food == nil || claim.Food.OwnerID.String() != userID {
		return domain.ClaimResponse{}, domain.ErrNotClaimResolver
	}

	if err := s.claimRepository.UpdateClaimStatus(ctx, claimID, domain.ClaimStatusRejected); err != nil {
		return domain.ClaimResponse{}, err
	}

	claim.Status = domain.ClaimStatusRejected

	s.notifyRequester(claim, "Your claim was rejected",
		fmt.Sprintf("<p>Your claim for <b>%s</b> was rejected by the owner.</p>", claim.Food.Name))

	return toClaimResponse(claim), nil
}

// notifyRequester delivers the decision email on a best-effort basis; a mail
// failure never fails the claim resolution itself.
func (s *claimService) notifyRequester(claim *entities.Claim, subject, body string) {
	if claim.RequestedBy == nil || claim.RequestedBy.Email == "" {
		return
	}
	if err := mailing.SendMail(claim.RequestedBy.Email, subject, body); err != nil {
		log.Printf("Error sending claim notification: %v", err)
	}
}
