package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/claim"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetMyClaims(c *fiber.Ctx) error
		GetReceivedClaims(c *fiber.Ctx) error
		ApproveClaim(c *fiber.Ctx) error
		RejectClaim(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
	}
)

func NewClaimHandler(claimService claim.ClaimService) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("foodId")

	res, err := h.claimService.CreateClaim(c.Context(), foodID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateClaim)
}

func (h *claimHandler) GetMyClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.claimService.GetMyClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetReceivedClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.claimService.GetReceivedClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) ApproveClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("id")

	res, err := h.claimService.ApproveClaim(c.Context(), claimID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedApproveClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApproveClaim)
}

func (h *claimHandler) RejectClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	claimID := c.Params("id")

	res, err := h.claimService.RejectClaim(c.Context(), claimID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRejectClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRejectClaim)
}
