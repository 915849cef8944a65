package claim

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	foods map[string]*entities.Food
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: make(map[string]*entities.Food)}
}

func (f *fakeFoodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	f.foods[food.ID.String()] = food
	return nil
}

func (f *fakeFoodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return food, nil
}

func (f *fakeFoodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	f.foods[food.ID.String()] = food
	return nil
}

func (f *fakeFoodRepository) DeleteFoodWithClaims(ctx context.Context, id string) error {
	delete(f.foods, id)
	return nil
}

func (f *fakeFoodRepository) GetFoodsByOwner(ctx context.Context, ownerID string) ([]*entities.Food, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetAvailableFoods(ctx context.Context) ([]*entities.Food, error) {
	return nil, nil
}

func (f *fakeFoodRepository) GetFoodsByExpirationRange(ctx context.Context, ownerID string, startDate, endDate time.Time) ([]*entities.Food, error) {
	return nil, nil
}

type fakeClaimRepository struct {
	claims map[string]*entities.Claim
	foods  *fakeFoodRepository
}

func newFakeClaimRepository(foods *fakeFoodRepository) *fakeClaimRepository {
	return &fakeClaimRepository{claims: make(map[string]*entities.Claim), foods: foods}
}

func (f *fakeClaimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	f.claims[claim.ID.String()] = claim
	return nil
}

func (f *fakeClaimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	claim, ok := f.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if food, ok := f.foods.foods[claim.FoodID.String()]; ok {
		claim.Food = food
	}
	return claim, nil
}

func (f *fakeClaimRepository) GetClaimByFoodAndRequester(ctx context.Context, foodID, requesterID string) (*entities.Claim, error) {
	for _, claim := range f.claims {
		if claim.FoodID.String() == foodID && claim.RequestedByID.String() == requesterID {
			return claim, nil
		}
	}
	return nil, nil
}

func (f *fakeClaimRepository) GetClaimsByRequester(ctx context.Context, requesterID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, claim := range f.claims {
		if claim.RequestedByID.String() == requesterID {
			result = append(result, claim)
		}
	}
	return result, nil
}

func (f *fakeClaimRepository) GetClaimsByFoodOwner(ctx context.Context, ownerID string) ([]*entities.Claim, error) {
	var result []*entities.Claim
	for _, claim := range f.claims {
		food, ok := f.foods.foods[claim.FoodID.String()]
		if ok && food.OwnerID.String() == ownerID {
			claim.Food = food
			result = append(result, claim)
		}
	}
	return result, nil
}

func (f *fakeClaimRepository) ApproveClaim(ctx context.Context, claimID, foodID string) error {
	claim, ok := f.claims[claimID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	food, ok := f.foods.foods[foodID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	claim.Status = "APROBAT"
	food.Status = "REZERVAT"
	return nil
}

func (f *fakeClaimRepository) UpdateClaimStatus(ctx context.Context, claimID, status string) error {
	claim, ok := f.claims[claimID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	claim.Status = status
	return nil
}

func seedAvailableFood(foods *fakeFoodRepository, ownerID uuid.UUID) *entities.Food {
	food := &entities.Food{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           "Lapte",
		Category:       "Lactate",
		Quantity:       1,
		ExpirationDate: time.Now().AddDate(0, 0, 1),
		Status:         domain.FoodStatusAvailable,
	}
	foods.foods[food.ID.String()] = food
	return food
}

func TestCreateClaimSuccess(t *testing.T) {
	foods := newFakeFoodRepository()
	claims := newFakeClaimRepository(foods)
	service := NewClaimService(claims, foods)
	food := seedAvailableFood(foods, uuid.New())
	requester := uuid.New()

	res, err := service.CreateClaim(context.Background(), food.ID.String(), requester.String())
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if res.Status != domain.ClaimStatusPending {
		t.Fatalf("expected IN ASTEPTARE, got %s", res.Status)
	}
	if res.FoodID != food.ID.String() {
		t.Fatalf("expected food %s, got %s", food.ID, res.FoodID)
	}
}

func TestCreateClaimFoodNotFound(t *testing.T) {
	foods := newFakeFoodRepository()
	service := NewClaimService(newFakeClaimRepository(foods), foods)

	_, err := service.CreateClaim(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestCreateClaimOwnFood(t *testing.T) {
	foods := newFakeFoodRepository()
	service := NewClaimService(newFakeClaimRepository(foods), foods)
	ownerID := uuid.New()
	food := seedAvailableFood(foods, ownerID)

	_, err := service.CreateClaim(context.Background(), food.ID.String(), ownerID.String())
	if !errors.Is(err, domain.ErrClaimOwnFood) {
		t.Fatalf("expected ErrClaimOwnFood, got %v", err)
	}
}

func TestCreateClaimUnavailableFood(t *testing.T) {
	foods := newFakeFoodRepository()
	service := NewClaimService(newFakeClaimRepository(foods), foods)
	food := seedAvailableFood(foods, uuid.New())
	food.Status = domain.FoodStatusReserved

	_, err := service.CreateClaim(context.Background(), food.ID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrFoodNotAvailable) {
		t.Fatalf("expected ErrFoodNotAvailable, got %v", err)
	}
}

func TestCreateClaimDuplicate(t *testing.T) {
	foods := newFakeFoodRepository()
	service := NewClaimService(newFakeClaimRepository(foods), foods)
	food := seedAvailableFood(foods, uuid.New())
	requester := uuid.New()

	if _, err := service.CreateClaim(context.Background(), food.ID.String(), requester.String()); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	_, err := service.CreateClaim(context.Background(), food.ID.String(), requester.String())
	if !errors.Is(err, domain.ErrClaimAlreadyExists) {
		t.Fatalf("expected ErrClaimAlreadyExists, got %v", err)
	}
}

func TestApproveClaimReservesFood(t *testing.T) {
	foods := newFakeFoodRepository()
	claims := newFakeClaimRepository(foods)
	service := NewClaimService(claims, foods)
	ownerID := uuid.New()
	food := seedAvailableFood(foods, ownerID)

	created, err := service.CreateClaim(context.Background(), food.ID.String(), uuid.New().String())
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}

	res, err := service.ApproveClaim(context.Background(), created.ID, ownerID.String())
	if err != nil {
		t.Fatalf("approve claim: %v", err)
	}
	if res.Status != domain.ClaimStatusApproved {
		t.Fatalf("expected APROBAT, got %s", res.Status)
	}
	if food.Status != domain.FoodStatusReserved {
		t.Fatalf("expected food REZERVAT, got %s", food.Status)
	}
}

func TestApproveClaimRequiresFoodOwner(t *testing.T) {
	foods := newFakeFoodRepository()
	claims := newFakeClaimRepository(foods)
	service := NewClaimService(claims, foods)
	food := seedAvailableFood(foods, uuid.New())

	created, err := service.CreateClaim(context.Background(), food.ID.String(), uuid.New().String())
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}

	if _, err := service.ApproveClaim(context.Background(), created.ID, uuid.New().String()); !errors.Is(err, domain.ErrNotClaimResolver) {
		t.Fatalf("expected ErrNotClaimResolver, got %v", err)
	}
	if _, err := service.RejectClaim(context.Background(), created.ID, uuid.New().String()); !errors.Is(err, domain.ErrNotClaimResolver) {
		t.Fatalf("expected ErrNotClaimResolver on reject, got %v", err)
	}
}

func TestRejectClaimKeepsFoodAvailable(t *testing.T) {
	foods := newFakeFoodRepository()
	claims := newFakeClaimRepository(foods)
	service := NewClaimService(claims, foods)
	ownerID := uuid.New()
	food := seedAvailableFood(foods, ownerID)

	created, err := service.CreateClaim(context.Background(), food.ID.String(), uuid.New().String())
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}

	res, err := service.RejectClaim(context.Background(), created.ID, ownerID.String())
	if err != nil {
		t.Fatalf("reject claim: %v", err)
	}
	if res.Status != domain.ClaimStatusRejected {
		t.Fatalf("expected RESPINS, got %s", res.Status)
	}
	if food.Status != domain.FoodStatusAvailable {
		t.Fatalf("expected food to stay DISPONIBIL, got %s", food.Status)
	}
}

func TestClaimAfterApprovalFails(t *testing.T) {
	foods := newFakeFoodRepository()
	claims := newFakeClaimRepository(foods)
	service := NewClaimService(claims, foods)
	ownerID := uuid.New()
	food := seedAvailableFood(foods, ownerID)

	created, err := service.CreateClaim(context.Background(), food.ID.String(), uuid.New().String())
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if _, err := service.ApproveClaim(context.Background(), created.ID, ownerID.String()); err != nil {
		t.Fatalf("approve claim: %v", err)
	}

	_, err = service.CreateClaim(context.Background(), food.ID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrFoodNotAvailable) {
		t.Fatalf("expected ErrFoodNotAvailable after approval, got %v", err)
	}
}

func TestApproveClaimNotFound(t *testing.T) {
	foods := newFakeFoodRepository()
	service := NewClaimService(newFakeClaimRepository(foods), foods)

	_, err := service.ApproveClaim(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrClaimNotFound) {
		t.Fatalf("expected ErrClaimNotFound, got %v", err)
	}
}
