package handlers

import (
	"FoodShare-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a domain error to its HTTP status. Anything not in the
// taxonomy is an unexpected failure and surfaces as 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrClaimNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotFoodOwner),
		errors.Is(err, domain.ErrNotClaimResolver),
		errors.Is(err, domain.ErrNotGroupMember),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrClaimOwnFood),
		errors.Is(err, domain.ErrFoodNotAvailable),
		errors.Is(err, domain.ErrClaimAlreadyExists),
		errors.Is(err, domain.ErrAlreadyGroupMember),
		errors.Is(err, domain.ErrInvalidExpirationDate),
		errors.Is(err, domain.ErrExpirationDateInPast),
		errors.Is(err, domain.ErrExpiredFoodUnavailable),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
