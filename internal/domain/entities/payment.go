package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is the payment record persisted per print job.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (job_id-index): job_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. Provider schemas vary, so both are kept.
type Payment struct {
	ID      string          `json:"id"`
	JobID   string          `json:"job_id"`
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Status  PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
