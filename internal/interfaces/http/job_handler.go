package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
)

// JobHandler contractor jobs.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler builds the handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Create godoc
// @Summary      Open a job
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "Job data"
// @Success      201   {object}  dto.JobResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.CustomerID == "" || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id and title are required"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List my jobs
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Success      200  {array}  dto.JobResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update or advance a job
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Job ID"
// @Param        body  body  dto.UpdateJobRequest  true  "Fields"
// @Success      200   {object}  dto.JobResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Security     Bearer
// @Param        id  path  string  true  "Job ID"
// @Success      204
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
