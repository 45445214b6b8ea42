package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
)

// tierChecker is the minimal contract the middleware needs to check a
// subscription gate. *usecase.EntitlementService implements it; the interface
// avoids a circular import.
type tierChecker interface {
	HasTier(ctx context.Context, contractorID, required string) (bool, error)
}

// RequireTier returns a middleware that blocks contractors below the required
// subscription tier. Must run after AuthMiddleware.
//
// Behavior:
//   - 402 Payment Required -> tier too low, upgrade needed.
//   - 503 Service Unavailable -> infrastructure failure while checking.
//   - 401 if no user_id is in the context (AuthMiddleware should have set it).
func RequireTier(required string, checker tierChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contractorID := GetUserID(c)
		if contractorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id not found in token",
			})
		}

		ok, err := checker.HasTier(c.Context(), contractorID, required)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "TIER_CHECK_FAILED",
				Message: "could not verify subscription, try again later",
			})
		}

		if !ok {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Code:    "TIER_REQUIRED",
				Message: "the '" + required + "' plan or higher is required for this feature",
			})
		}

		return c.Next()
	}
}
