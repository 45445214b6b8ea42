package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
)

// maxUploadBytes caps verification document uploads (10 MiB).
const maxUploadBytes = 10 << 20

// VerificationHandler document uploads and identity-verification sessions.
type VerificationHandler struct {
	docUC      *verification.DocumentUseCase
	identityUC *verification.IdentityUseCase
}

// NewVerificationHandler builds the handler.
func NewVerificationHandler(docUC *verification.DocumentUseCase, identityUC *verification.IdentityUseCase) *VerificationHandler {
	return &VerificationHandler{docUC: docUC, identityUC: identityUC}
}

// Upload godoc
// @Summary      Upload a verification document
// @Tags         verification
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  formData  string  true  "Document kind: id, income, insurance, license"
// @Param        file  formData  file    true  "Document file"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/verification/documents [post]
func (h *VerificationHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "file is required"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "file exceeds the 10 MB limit"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "could not read file"})
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "could not read file"})
	}

	req := &dto.UploadDocumentRequest{
		Kind:     c.FormValue("kind"),
		FileName: fileHeader.Filename,
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	out, err := h.docUC.Upload(c.Context(), GetUserID(c), req, body, contentType)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List my verification documents
// @Tags         verification
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/verification/documents [get]
func (h *VerificationHandler) List(c *fiber.Ctx) error {
	out, err := h.docUC.List(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a verification document with a download URL
// @Tags         verification
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/verification/documents/{id} [get]
func (h *VerificationHandler) Get(c *fiber.Ctx) error {
	out, err := h.docUC.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// StartIdentity godoc
// @Summary      Start an identity-verification session
// @Tags         verification
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.IdentityVerificationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/verification/identity [post]
func (h *VerificationHandler) StartIdentity(c *fiber.Ctx) error {
	out, err := h.identityUC.StartSession(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// IdentityStatus godoc
// @Summary      Get my latest identity-verification status
// @Tags         verification
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.IdentityVerificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/verification/identity [get]
func (h *VerificationHandler) IdentityStatus(c *fiber.Ctx) error {
	out, err := h.identityUC.Status(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
