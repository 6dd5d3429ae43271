package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "eprinter/internal/adapter/http/dto/request"
	response "eprinter/internal/adapter/http/dto/response"
	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase"
	"eprinter/pkg"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// SettingsHandler serves the admin pricing and policy configuration.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// Put replaces the active configuration. Jobs priced under the previous
// table keep their persisted totals.
func (h *SettingsHandler) Put(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := payload.ToSettings()
	if err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), settings)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(updated))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSettingsNotFound):
		return pkg.NewDomainErrorSimple("SETTINGS_NOT_FOUND", "Settings have not been initialized", http.StatusNotFound)
	case errors.Is(err, entities.ErrNegativePrice),
		errors.Is(err, entities.ErrInvalidMaxCopies),
		errors.Is(err, entities.ErrInvalidFileSizeLimit),
		errors.Is(err, entities.ErrNoAcceptedTypes),
		errors.Is(err, entities.ErrInvalidWindow):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
