package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
)

// PropertyHandler landlord properties and units, plus the public unit browser.
type PropertyHandler struct {
	uc *usecase.PropertyUseCase
}

// NewPropertyHandler builds the handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// Create godoc
// @Summary      Create a property
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePropertyRequest  true  "Property data"
// @Success      201   {object}  dto.PropertyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" || in.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and address are required"})
	}
	out, err := h.uc.CreateProperty(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List my properties
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PropertyResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err == nil {
		page.DefaultPage()
	} else {
		page = dto.PageRequest{Limit: 20}
	}
	out, err := h.uc.ListProperties(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a property
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Property ID"
// @Success      200  {object}  dto.PropertyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProperty(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a property
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Property ID"
// @Param        body  body  dto.UpdatePropertyRequest  true  "Fields"
// @Success      200   {object}  dto.PropertyResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateProperty(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a property
// @Tags         properties
// @Security     Bearer
// @Param        id  path  string  true  "Property ID"
// @Success      204
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProperty(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateUnit godoc
// @Summary      Add a unit to a property
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Property ID"
// @Param        body  body  dto.CreateUnitRequest  true  "Unit data"
// @Success      201   {object}  dto.UnitResponse
// @Router       /api/properties/{id}/units [post]
func (h *PropertyHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label is required"})
	}
	out, err := h.uc.CreateUnit(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      List a property's units
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Property ID"
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/properties/{id}/units [get]
func (h *PropertyHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListUnits(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateUnit godoc
// @Summary      Update a unit
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Unit ID"
// @Param        body  body  dto.UpdateUnitRequest  true  "Fields"
// @Success      200   {object}  dto.UnitResponse
// @Router       /api/units/{id} [put]
func (h *PropertyHandler) UpdateUnit(c *fiber.Ctx) error {
	var in dto.UpdateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateUnit(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteUnit godoc
// @Summary      Delete a unit
// @Tags         units
// @Security     Bearer
// @Param        id  path  string  true  "Unit ID"
// @Success      204
// @Router       /api/units/{id} [delete]
func (h *PropertyHandler) DeleteUnit(c *fiber.Ctx) error {
	if err := h.uc.DeleteUnit(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Browse godoc
// @Summary      Browse vacant units (public)
// @Tags         units
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units/browse [get]
func (h *PropertyHandler) Browse(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.BrowseVacantUnits(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
