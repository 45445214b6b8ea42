package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
)

// fail maps domain errors onto HTTP statuses. Unrecognized errors become 500
// without leaking the underlying message.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "resource already exists"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: "email already registered"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication failed"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflict with current state"})
	case errors.Is(err, domain.ErrUnitUnavailable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNIT_UNAVAILABLE", Message: "unit is not available"})
	case errors.Is(err, domain.ErrLimitExceeded):
		return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "LIMIT_EXCEEDED", Message: "subscription limit exceeded, upgrade to continue"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
}
