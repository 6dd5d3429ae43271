package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "eprinter/internal/adapter/http/dto/request"
	response "eprinter/internal/adapter/http/dto/response"
	"eprinter/internal/metrics"
	"eprinter/internal/printcalc"
	"eprinter/internal/usecase"
	"eprinter/pkg"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler serves the advisory cost estimates the client form
// recomputes on each change. Responses are never binding; the
// authoritative price is computed again at job submission.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate computes an advisory estimate for the given selection,
// copies and mode against the current pricing table.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Estimate(
		c.Request.Context(),
		payload.Expression,
		payload.TotalPages,
		payload.ResolveCopies(),
		payload.ResolveMode(),
	)
	if err != nil {
		metrics.EstimateComputed("rejected")
		appErr := mapComputeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.EstimateComputed("ok")
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// mapComputeError translates page-range and pricing failures into the
// wire error contract. Every rejection names the first offending input
// so the client can point at the exact field.
func mapComputeError(err error) *pkg.AppError {
	var (
		pageCount   *printcalc.InvalidPageCountError
		malformed   *printcalc.MalformedTermError
		inverted    *printcalc.InvertedRangeError
		outOfBounds *printcalc.OutOfBoundsError
		empty       *printcalc.EmptySelectionError
		copies      *printcalc.CopiesOutOfRangeError
		mode        *printcalc.UnknownModeError
		option      *printcalc.UnsupportedOptionError
		pricing     *printcalc.PricingUnavailableError
	)
	switch {
	case errors.As(err, &pageCount):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_COUNT", pageCount.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &malformed):
		return pkg.NewDomainErrorSimple("MALFORMED_TERM", malformed.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &inverted):
		return pkg.NewDomainErrorSimple("INVERTED_RANGE", inverted.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &outOfBounds):
		return pkg.NewDomainErrorSimple("PAGE_OUT_OF_BOUNDS", outOfBounds.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &empty):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", empty.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &copies):
		return pkg.NewDomainErrorSimple("COPIES_OUT_OF_RANGE", copies.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &mode):
		return pkg.NewDomainErrorSimple("UNKNOWN_MODE", mode.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &option):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_OPTION", option.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &pricing):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Pricing is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
