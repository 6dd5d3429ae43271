package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"eprinter/internal/printcalc"
)

// PrintJobStatus represents the lifecycle of a print job in the queue.
//
// Domain notes:
//   - The backend is the source of truth for job state and price.
//   - A job becomes payable the moment it is submitted and is charged the
//     server-computed cost, never the client's advisory estimate.

type PrintJobStatus string

const (
	PrintJobStatusPendingPayment PrintJobStatus = "pending_payment"
	PrintJobStatusPaid           PrintJobStatus = "paid"
	PrintJobStatusQueued         PrintJobStatus = "queued"
	PrintJobStatusPrinting       PrintJobStatus = "printing"
	PrintJobStatusReady          PrintJobStatus = "ready"
	PrintJobStatusCollected      PrintJobStatus = "collected"
	PrintJobStatusCancelled      PrintJobStatus = "cancelled"
)

// Next returns the single legal queue progression from s. Payment,
// collection and cancellation move through their own operations, not
// through Next.
func (s PrintJobStatus) Next() (PrintJobStatus, bool) {
	switch s {
	case PrintJobStatusPaid:
		return PrintJobStatusQueued, true
	case PrintJobStatusQueued:
		return PrintJobStatusPrinting, true
	case PrintJobStatusPrinting:
		return PrintJobStatusReady, true
	default:
		return "", false
	}
}

// PrintJob is the persisted print order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Monetary representation:
//   - UnitPrice and TotalCost are the server-authoritative values computed
//     at submission time from a fresh pricing snapshot.
type PrintJob struct {
	ID          string                `json:"id"`
	DocumentID  string                `json:"document_id"`
	PickupCode  string                `json:"pickup_code"`
	Expression  string                `json:"expression"`
	TotalPages  int                   `json:"total_pages"`
	Pages       []int                 `json:"pages"`
	Copies      int                   `json:"copies"`
	Mode        printcalc.Mode        `json:"mode"`
	PaperSize   printcalc.PaperSize   `json:"paper_size"`
	Orientation printcalc.Orientation `json:"orientation"`
	Duplex      bool                  `json:"duplex"`

	Impressions int             `json:"impressions"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Currency    string          `json:"currency"`

	// PriceChanged is set when the client's advisory estimate disagreed
	// with the authoritative computation at submission time.
	PriceChanged bool `json:"price_changed"`

	Status    PrintJobStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
