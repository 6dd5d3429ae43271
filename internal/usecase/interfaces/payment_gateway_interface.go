package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// The service uses it to open an order for the authoritative amount,
// verify the client-reported payment signature, and fetch the provider's
// payment record for audit persistence.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (orderID string, raw json.RawMessage, err error)
	VerifySignature(orderID, paymentID, signature string) bool
	FetchPayment(ctx context.Context, paymentID string) (status string, raw json.RawMessage, err error)
}
