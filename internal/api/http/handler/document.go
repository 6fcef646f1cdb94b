package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fundacionaurora/clinica_backend/internal/service/document"
)

type DocumentHandler struct {
	svc document.Service
}

func NewDocumentHandler(svc document.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func mapDocumentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, document.ErrFileTooLarge):
		return badRequest(c, err.Error())
	case errors.Is(err, document.ErrEmptyFile):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /patients/:id/documents
// Multipart upload; stores the object and a metadata row.
func (h *DocumentHandler) Upload(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	uploadedBy, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file field is required")
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()

	doc, err := h.svc.Upload(c.Context(), document.UploadRequest{
		PatientID:   patientID,
		UploadedBy:  uploadedBy,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return mapDocumentError(c, err)
	}

	return created(c, doc)
}

// GET /patients/:id/documents
func (h *DocumentHandler) List(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	docs, err := h.svc.List(c.Context(), patientID)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return ok(c, docs)
}

// GET /documents/:id/download
// Redirects to a presigned URL.
func (h *DocumentHandler) Download(c fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	info, err := h.svc.GetDownloadURL(c.Context(), documentID)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return c.Redirect().To(info.DownloadURL)
}

// DELETE /documents/:id
func (h *DocumentHandler) Delete(c fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	if err := h.svc.Delete(c.Context(), documentID); err != nil {
		return mapDocumentError(c, err)
	}

	return noContent(c)
}
