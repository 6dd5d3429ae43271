package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "eprinter/internal/adapter/http/dto/request"
	response "eprinter/internal/adapter/http/dto/response"
	"eprinter/internal/metrics"
	"eprinter/internal/usecase"
	"eprinter/pkg"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler serves checkout order creation and the confirmation
// callback. The charged amount is always the job's persisted
// authoritative cost.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateOrder opens a provider checkout order for a pending job.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	order, err := h.usecase.CreateOrder(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentOrder(order))
}

// Confirm verifies the checkout signature, fetches the payment from the
// provider and records the outcome; on approval the job moves to paid
// and is enqueued for the print station.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Confirm(c.Request.Context(), usecase.ConfirmPaymentCommand{
		JobID:     c.Param("job_id"),
		OrderID:   payload.OrderID,
		PaymentID: payload.PaymentID,
		Signature: payload.Signature,
	})
	if err != nil {
		metrics.PaymentConfirmed("error")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.PaymentConfirmed(string(payment.Status))
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListByJobID returns the payment history of a job.
func (h *PaymentHandler) ListByJobID(c *gin.Context) {
	payments, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrintJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Print job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotPayable):
		return pkg.NewDomainErrorSimple("JOB_NOT_PAYABLE", "Job is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainErrorSimple("SIGNATURE_MISMATCH", "Payment signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotReady):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
