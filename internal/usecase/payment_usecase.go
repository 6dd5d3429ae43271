package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidPaymentJobID = errors.New("invalid job_id")
	ErrJobNotPayable       = errors.New("job is not awaiting payment")
	ErrSignatureMismatch   = errors.New("payment signature verification failed")
	ErrGatewayNotReady     = errors.New("payment gateway not configured")
)

// PaymentOrder is what the client needs to open the gateway checkout:
// the provider order id and the authoritative amount.
type PaymentOrder struct {
	OrderID  string          `json:"order_id"`
	JobID    string          `json:"job_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ConfirmPaymentCommand carries the client-reported checkout result.
type ConfirmPaymentCommand struct {
	JobID     string
	OrderID   string
	PaymentID string
	Signature string
}

// IPaymentUseCase encapsulates order creation and payment confirmation.
//
// The amount sent to the gateway is always the persisted authoritative
// cost; nothing from the client's checkout response can change it.

type IPaymentUseCase interface {
	CreateOrder(ctx context.Context, jobID string) (PaymentOrder, error)
	Confirm(ctx context.Context, cmd ConfirmPaymentCommand) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	jobRepo interfaces.IPrintJobRepository
	gateway interfaces.IPaymentGateway
	queue   interfaces.IPrintQueue
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	jobRepo interfaces.IPrintJobRepository,
	gateway interfaces.IPaymentGateway,
	queue interfaces.IPrintQueue,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, jobRepo: jobRepo, gateway: gateway, queue: queue}
}

func (u *PaymentUseCase) CreateOrder(ctx context.Context, jobID string) (PaymentOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return PaymentOrder{}, ErrInvalidPaymentJobID
	}
	if u.gateway == nil {
		return PaymentOrder{}, ErrGatewayNotReady
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return PaymentOrder{}, err
	}
	if job.ID == "" {
		return PaymentOrder{}, ErrPrintJobNotFound
	}
	if job.Status != entities.PrintJobStatusPendingPayment {
		return PaymentOrder{}, ErrJobNotPayable
	}

	orderID, _, err := u.gateway.CreateOrder(ctx, job.TotalCost, job.Currency, job.ID)
	if err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("gateway order creation failed")
		return PaymentOrder{}, err
	}

	log.Info().Str("job_id", job.ID).Str("order_id", orderID).
		Str("amount", job.TotalCost.StringFixed(2)).Msg("payment order created")
	return PaymentOrder{
		OrderID:  orderID,
		JobID:    job.ID,
		Amount:   job.TotalCost,
		Currency: job.Currency,
	}, nil
}

func (u *PaymentUseCase) Confirm(ctx context.Context, cmd ConfirmPaymentCommand) (entities.Payment, error) {
	jobID := strings.TrimSpace(cmd.JobID)
	if jobID == "" {
		return entities.Payment{}, ErrInvalidPaymentJobID
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotReady
	}
	if cmd.OrderID == "" || cmd.PaymentID == "" || cmd.Signature == "" {
		return entities.Payment{}, ErrSignatureMismatch
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" {
		return entities.Payment{}, ErrPrintJobNotFound
	}
	if job.Status != entities.PrintJobStatusPendingPayment {
		return entities.Payment{}, ErrJobNotPayable
	}

	if !u.gateway.VerifySignature(cmd.OrderID, cmd.PaymentID, cmd.Signature) {
		log.Warn().Str("job_id", job.ID).Str("order_id", cmd.OrderID).Msg("payment signature rejected")
		return entities.Payment{}, ErrSignatureMismatch
	}

	providerStatus, providerRaw, err := u.gateway.FetchPayment(ctx, cmd.PaymentID)
	if err != nil {
		return entities.Payment{}, err
	}

	status := entities.PaymentStatusApproved
	if providerStatus != "captured" && providerStatus != "authorized" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerRaw, &parsed); err != nil {
		log.Warn().Err(err).Str("payment_id", cmd.PaymentID).Msg("provider payload unmarshal failed")
	}

	payment := entities.Payment{
		ID:                 cmd.PaymentID,
		JobID:              job.ID,
		OrderID:            cmd.OrderID,
		Amount:             job.TotalCost,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerRaw,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		return entities.Payment{}, err
	}
	if status != entities.PaymentStatusApproved {
		log.Warn().Str("job_id", job.ID).Str("provider_status", providerStatus).Msg("payment denied by provider")
		return created, nil
	}

	updated, err := u.jobRepo.TransitionStatus(ctx, job.ID, entities.PrintJobStatusPendingPayment, entities.PrintJobStatusPaid)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrJobNotPayable
	}

	if u.queue != nil {
		payload, mErr := json.Marshal(map[string]string{"job_id": updated.ID})
		if mErr == nil {
			if qErr := u.queue.Enqueue(ctx, payload); qErr != nil {
				// the job stays paid; the station picks it up from the queue list
				log.Error().Err(qErr).Str("job_id", updated.ID).Msg("print queue enqueue failed")
			}
		}
	}

	log.Info().Str("job_id", updated.ID).Str("payment_id", created.ID).Msg("payment confirmed")
	return created, nil
}

func (u *PaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidPaymentJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}
