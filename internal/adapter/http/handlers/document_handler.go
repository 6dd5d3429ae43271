package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	response "eprinter/internal/adapter/http/dto/response"
	"eprinter/internal/metrics"
	"eprinter/internal/printcalc"
	"eprinter/internal/usecase"
	"eprinter/pkg"
)

var errMissingFile = pkg.NewDomainErrorSimple("MISSING_FILE", "Multipart field 'file' is required", http.StatusBadRequest)

// DocumentHandler serves uploads and document metadata lookups. The
// uploaded file lands in a temp path first so it can be sniffed and
// page-counted before anything is persisted.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// Upload receives a multipart document, validates it against the current
// upload policy and returns the stored metadata including the
// server-counted page total.
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}

	tempPath := filepath.Join(os.TempDir(), "eprinter-upload-"+uuid.NewString())
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		metrics.DocumentUploaded("error")
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not receive the uploaded file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", tempPath).Msg("failed to remove upload temp file")
		}
	}()

	doc, err := h.usecase.Upload(c.Request.Context(), fileHeader.Filename, tempPath)
	if err != nil {
		metrics.DocumentUploaded("rejected")
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.DocumentUploaded("ok")
	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

// GetByID returns document metadata, most importantly the authoritative
// page count the client resolves ranges against.
func (h *DocumentHandler) GetByID(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

func mapDocumentError(err error) *pkg.AppError {
	var pricing *printcalc.PricingUnavailableError
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the configured size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILE_TYPE", "File type not accepted", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrUnreadableDocument):
		return pkg.NewDomainErrorSimple("UNREADABLE_DOCUMENT", "Document could not be read", http.StatusUnprocessableEntity)
	case errors.As(err, &pricing):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Upload policy is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
