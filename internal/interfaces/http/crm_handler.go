package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
)

// CRMHandler contractor customers and employees.
type CRMHandler struct {
	uc *usecase.CRMUseCase
}

// NewCRMHandler builds the handler.
func NewCRMHandler(uc *usecase.CRMUseCase) *CRMHandler {
	return &CRMHandler{uc: uc}
}

// CreateCustomer godoc
// @Summary      Add a customer
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Customer data"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/crm/customers [post]
func (h *CRMHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.CreateCustomer(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCustomers godoc
// @Summary      List my customers
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/crm/customers [get]
func (h *CRMHandler) ListCustomers(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListCustomers(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteCustomer godoc
// @Summary      Remove a customer
// @Tags         crm
// @Security     Bearer
// @Param        id  path  string  true  "Customer ID"
// @Success      204
// @Router       /api/crm/customers/{id} [delete]
func (h *CRMHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.uc.DeleteCustomer(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateEmployee godoc
// @Summary      Add an employee
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Employee data"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/crm/employees [post]
func (h *CRMHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.CreateEmployee(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEmployees godoc
// @Summary      List my employees
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/crm/employees [get]
func (h *CRMHandler) ListEmployees(c *fiber.Ctx) error {
	out, err := h.uc.ListEmployees(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeactivateEmployee godoc
// @Summary      Deactivate an employee
// @Tags         crm
// @Security     Bearer
// @Param        id  path  string  true  "Employee ID"
// @Success      204
// @Router       /api/crm/employees/{id} [delete]
func (h *CRMHandler) DeactivateEmployee(c *fiber.Ctx) error {
	if err := h.uc.DeactivateEmployee(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
