package response

import (
	"time"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase"
)

// PaymentOrderResponse is returned when a checkout order is opened for
// a job; the client hands order_id to the provider widget.
type PaymentOrderResponse struct {
	OrderID  string `json:"order_id"`
	JobID    string `json:"job_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func FromPaymentOrder(o usecase.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderID:  o.OrderID,
		JobID:    o.JobID,
		Amount:   o.Amount.StringFixed(2),
		Currency: o.Currency,
	}
}

type PaymentResponse struct {
	ID      string    `json:"id"`
	JobID   string    `json:"job_id"`
	OrderID string    `json:"order_id"`
	Amount  string    `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		JobID:              p.JobID,
		OrderID:            p.OrderID,
		Amount:             p.Amount.StringFixed(2),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
