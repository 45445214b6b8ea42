package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
)

// ContractorHandler business profile, license verification, and public reviews.
type ContractorHandler struct {
	profileUC *usecase.ContractorProfileUseCase
	licenseUC *verification.LicenseUseCase
	reviewUC  *usecase.ReviewUseCase
}

// NewContractorHandler builds the handler.
func NewContractorHandler(profileUC *usecase.ContractorProfileUseCase, licenseUC *verification.LicenseUseCase, reviewUC *usecase.ReviewUseCase) *ContractorHandler {
	return &ContractorHandler{profileUC: profileUC, licenseUC: licenseUC, reviewUC: reviewUC}
}

// Upsert godoc
// @Summary      Create or update my business profile
// @Tags         contractors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertContractorProfileRequest  true  "Profile data"
// @Success      200   {object}  dto.ContractorProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contractor/profile [put]
func (h *ContractorHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertContractorProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.BusinessName == "" || in.Trade == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "business_name and trade are required"})
	}
	out, err := h.profileUC.Upsert(GetUserID(c), &in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get my business profile
// @Tags         contractors
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ContractorProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractor/profile [get]
func (h *ContractorHandler) Get(c *fiber.Ctx) error {
	out, err := h.profileUC.Get(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetPublic godoc
// @Summary      Public contractor profile (license number redacted)
// @Tags         contractors
// @Produce      json
// @Param        id  path  string  true  "Profile ID"
// @Success      200  {object}  dto.ContractorProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id} [get]
func (h *ContractorHandler) GetPublic(c *fiber.Ctx) error {
	out, err := h.profileUC.GetPublic(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// VerifyLicense godoc
// @Summary      Check my license against the state registry
// @Tags         contractors
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/contractor/license/verify [post]
func (h *ContractorHandler) VerifyLicense(c *fiber.Ctx) error {
	status, err := h.licenseUC.Verify(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"license_status": status})
}

// CreateReview godoc
// @Summary      Post a review for a contractor
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Profile ID"
// @Param        body  body  dto.CreateReviewRequest  true  "Review data"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contractors/{id}/reviews [post]
func (h *ContractorHandler) CreateReview(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.reviewUC.Create(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReviews godoc
// @Summary      List a contractor's reviews (public)
// @Tags         reviews
// @Produce      json
// @Param        id  path  string  true  "Profile ID"
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/contractors/{id}/reviews [get]
func (h *ContractorHandler) ListReviews(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.reviewUC.List(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
