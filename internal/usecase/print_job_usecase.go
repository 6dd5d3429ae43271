package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"eprinter/internal/domain/entities"
	"eprinter/internal/printcalc"
	"eprinter/internal/usecase/interfaces"
)

var (
	ErrPrintJobNotFound  = errors.New("print job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrServiceClosed     = errors.New("print service is closed")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotCancellable    = errors.New("job can no longer be cancelled")
	ErrNotReadyForPickup = errors.New("job is not ready for pickup")
	ErrWrongPickupCode   = errors.New("pickup code does not match")
)

// SubmitPrintJobCommand carries the raw client submission. The client's
// claimed page count and advisory cost are used only for the
// reconciliation flag; resolution and pricing run against the stored
// document and a fresh snapshot.
type SubmitPrintJobCommand struct {
	DocumentID        string
	Expression        string
	ClaimedTotalPages int
	Options           printcalc.Options
	ClientTotalCost   *decimal.Decimal
}

// IPrintJobUseCase exposes the print-job operations:
//   - Submit: authoritative re-resolution + pricing, persists the job
//   - Cancel: user cancellation before payment
//   - Advance: admin queue progression (paid -> queued -> printing -> ready)
//   - Collect: pickup-code checked handover

type IPrintJobUseCase interface {
	Submit(ctx context.Context, cmd SubmitPrintJobCommand) (entities.PrintJob, error)
	GetByID(ctx context.Context, id string) (entities.PrintJob, error)
	ListByStatus(ctx context.Context, status entities.PrintJobStatus) ([]entities.PrintJob, error)
	Cancel(ctx context.Context, id string) (entities.PrintJob, error)
	Advance(ctx context.Context, id string) (entities.PrintJob, error)
	Collect(ctx context.Context, id, pickupCode string) (entities.PrintJob, error)
}

type PrintJobUseCase struct {
	repo    interfaces.IPrintJobRepository
	docs    interfaces.IDocumentRepository
	pricing interfaces.IPricingSource
}

var _ IPrintJobUseCase = (*PrintJobUseCase)(nil)

func NewPrintJobUseCase(
	repo interfaces.IPrintJobRepository,
	docs interfaces.IDocumentRepository,
	pricing interfaces.IPricingSource,
) *PrintJobUseCase {
	return &PrintJobUseCase{repo: repo, docs: docs, pricing: pricing}
}

func (u *PrintJobUseCase) Submit(ctx context.Context, cmd SubmitPrintJobCommand) (entities.PrintJob, error) {
	docID := strings.TrimSpace(cmd.DocumentID)
	if docID == "" {
		return entities.PrintJob{}, ErrInvalidDocumentID
	}

	doc, err := u.docs.GetByID(ctx, docID)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if doc.ID == "" {
		return entities.PrintJob{}, ErrDocumentNotFound
	}

	// One snapshot for the whole computation.
	snap, err := u.pricing.FetchSnapshot(ctx)
	if err != nil {
		return entities.PrintJob{}, err
	}

	now := time.Now().UTC()
	if !snap.OpenAt(now) {
		return entities.PrintJob{}, ErrServiceClosed
	}

	// Any validation failure rejects the submission with its specific
	// error kind; nothing is fixed up to a nearest valid interpretation.
	desc, err := printcalc.BuildDescriptor(doc.ID, cmd.Expression, doc.PageCount, cmd.Options, snap)
	if err != nil {
		return entities.PrintJob{}, err
	}

	priceChanged := cmd.ClaimedTotalPages != doc.PageCount
	if cmd.ClientTotalCost != nil && !cmd.ClientTotalCost.Equal(desc.Estimate.TotalCost) {
		priceChanged = true
	}
	if priceChanged {
		log.Info().Str("document_id", doc.ID).
			Int("claimed_pages", cmd.ClaimedTotalPages).Int("actual_pages", doc.PageCount).
			Msg("client estimate disagrees with authoritative computation")
	}

	job := entities.PrintJob{
		ID:           uuid.NewString(),
		DocumentID:   doc.ID,
		PickupCode:   newPickupCode(),
		Expression:   cmd.Expression,
		TotalPages:   doc.PageCount,
		Pages:        desc.Selection.Pages,
		Copies:       desc.Options.Copies,
		Mode:         desc.Options.Mode,
		PaperSize:    desc.Options.PaperSize,
		Orientation:  desc.Options.Orientation,
		Duplex:       desc.Options.Duplex,
		Impressions:  desc.Estimate.Impressions,
		UnitPrice:    desc.Estimate.UnitPrice,
		TotalCost:    desc.Estimate.TotalCost,
		Currency:     desc.Estimate.Currency,
		PriceChanged: priceChanged,
		Status:       entities.PrintJobStatusPendingPayment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, job)
}

func (u *PrintJobUseCase) GetByID(ctx context.Context, id string) (entities.PrintJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PrintJob{}, ErrInvalidJobID
	}

	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if job.ID == "" {
		return entities.PrintJob{}, ErrPrintJobNotFound
	}
	return job, nil
}

func (u *PrintJobUseCase) ListByStatus(ctx context.Context, status entities.PrintJobStatus) ([]entities.PrintJob, error) {
	return u.repo.ListByStatus(ctx, status)
}

func (u *PrintJobUseCase) Cancel(ctx context.Context, id string) (entities.PrintJob, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if job.Status != entities.PrintJobStatusPendingPayment {
		return entities.PrintJob{}, ErrNotCancellable
	}

	updated, err := u.repo.TransitionStatus(ctx, job.ID, entities.PrintJobStatusPendingPayment, entities.PrintJobStatusCancelled)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if updated.ID == "" {
		return entities.PrintJob{}, ErrNotCancellable
	}
	return updated, nil
}

func (u *PrintJobUseCase) Advance(ctx context.Context, id string) (entities.PrintJob, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PrintJob{}, err
	}

	next, ok := job.Status.Next()
	if !ok {
		return entities.PrintJob{}, ErrIllegalTransition
	}

	updated, err := u.repo.TransitionStatus(ctx, job.ID, job.Status, next)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if updated.ID == "" {
		// another admin moved the job first
		return entities.PrintJob{}, ErrIllegalTransition
	}
	log.Info().Str("job_id", updated.ID).Str("status", string(updated.Status)).Msg("job advanced")
	return updated, nil
}

func (u *PrintJobUseCase) Collect(ctx context.Context, id, pickupCode string) (entities.PrintJob, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if job.Status != entities.PrintJobStatusReady {
		return entities.PrintJob{}, ErrNotReadyForPickup
	}
	if !strings.EqualFold(strings.TrimSpace(pickupCode), job.PickupCode) {
		return entities.PrintJob{}, ErrWrongPickupCode
	}

	updated, err := u.repo.TransitionStatus(ctx, job.ID, entities.PrintJobStatusReady, entities.PrintJobStatusCollected)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if updated.ID == "" {
		return entities.PrintJob{}, ErrNotReadyForPickup
	}
	return updated, nil
}

// newPickupCode derives a short human-typeable code handed to the
// student at submission and checked at the counter.
func newPickupCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
