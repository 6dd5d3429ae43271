package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "eprinter/internal/adapter/http/dto/request"
	response "eprinter/internal/adapter/http/dto/response"
	"eprinter/internal/domain/entities"
	"eprinter/internal/metrics"
	"eprinter/internal/usecase"
	"eprinter/pkg"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid print job payload", http.StatusBadRequest)

// PrintJobHandler serves job submission, lookup, the admin queue views
// and the counter operations (advance, collect).

type PrintJobHandler struct {
	usecase usecase.IPrintJobUseCase
}

func NewPrintJobHandler(uc usecase.IPrintJobUseCase) *PrintJobHandler {
	return &PrintJobHandler{usecase: uc}
}

// Submit creates a print job. The selection is re-resolved against the
// stored document and priced from a fresh pricing snapshot; the response
// carries the authoritative total and a price_changed flag when the
// client's advisory numbers diverged.
func (h *PrintJobHandler) Submit(c *gin.Context) {
	var payload request.PrintJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	clientCost, err := payload.ResolveClientTotalCost()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	opts := payload.ResolveOptions()
	job, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitPrintJobCommand{
		DocumentID:        payload.DocumentID,
		Expression:        payload.Expression,
		ClaimedTotalPages: payload.TotalPages,
		Options:           opts,
		ClientTotalCost:   clientCost,
	})
	if err != nil {
		metrics.JobSubmitted(string(opts.Mode), "rejected")
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.JobSubmitted(string(job.Mode), "ok")
	c.JSON(http.StatusCreated, response.FromPrintJob(job))
}

func (h *PrintJobHandler) GetByID(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJob(job))
}

// ListByStatus is the admin queue view, filtered by the ?status= query.
func (h *PrintJobHandler) ListByStatus(c *gin.Context) {
	status := entities.PrintJobStatus(c.Query("status"))
	if status == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_STATUS", "Query parameter 'status' is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	jobs, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJobs(jobs))
}

// Cancel voids a job that has not been paid yet.
func (h *PrintJobHandler) Cancel(c *gin.Context) {
	job, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJob(job))
}

// Advance moves a job one step along the queue progression.
func (h *PrintJobHandler) Advance(c *gin.Context) {
	job, err := h.usecase.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJob(job))
}

// Collect hands over a ready job when the presented pickup code matches.
func (h *PrintJobHandler) Collect(c *gin.Context) {
	var payload request.CollectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_COLLECT_INPUT", "Pickup code is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.Collect(c.Request.Context(), c.Param("id"), payload.PickupCode)
	if err != nil {
		appErr := mapPrintJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintJob(job))
}

func mapPrintJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrintJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Print job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceClosed):
		return pkg.NewDomainErrorSimple("SERVICE_CLOSED", "The print service is currently closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotCancellable):
		return pkg.NewDomainErrorSimple("NOT_CANCELLABLE", "Job can no longer be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Job cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotReadyForPickup):
		return pkg.NewDomainErrorSimple("NOT_READY", "Job is not ready for pickup", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongPickupCode):
		return pkg.NewDomainErrorSimple("WRONG_PICKUP_CODE", "Pickup code does not match", http.StatusForbidden)
	default:
		return mapComputeError(err)
	}
}
