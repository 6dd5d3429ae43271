package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"eprinter/internal/config"
	"eprinter/internal/usecase/interfaces"
)

var (
	ErrMissingRazorpayCredentials = errors.New("missing razorpay key id or secret")
	ErrGatewayNotConfigured       = errors.New("razorpay gateway not configured")
)

// RazorpayGateway wraps the Razorpay SDK behind the payment gateway
// port. Amounts are converted to minor currency units (paise) on the
// way out; the decimal total never leaves the server in float form.
//
// Mock mode fabricates captured payments so local stacks work without
// provider credentials.

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(cfg config.RazorpayConfig) (*RazorpayGateway, error) {
	if cfg.Mock {
		log.Info().Msg("payment gateway mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, ErrMissingRazorpayCredentials
	}

	return &RazorpayGateway{
		client:    razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keySecret: cfg.KeySecret,
	}, nil
}

// CreateOrder opens a provider order for the given amount. The receipt
// carries the job id so provider dashboards link back to the job.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (string, json.RawMessage, error) {
	minorUnits := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	if g.mockMode {
		orderID := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, err := json.Marshal(map[string]any{
			"id":       orderID,
			"amount":   minorUnits,
			"currency": currency,
			"receipt":  receipt,
			"status":   "created",
		})
		if err != nil {
			return "", nil, err
		}
		log.Info().Str("order_id", orderID).Msg("mock payment order created")
		return orderID, raw, nil
	}

	if g.client == nil {
		return "", nil, ErrGatewayNotConfigured
	}

	order, err := g.client.Order.Create(map[string]interface{}{
		"amount":   minorUnits,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		log.Error().Err(err).Str("receipt", receipt).Msg("razorpay order create failed")
		return "", nil, err
	}

	raw, err := json.Marshal(order)
	if err != nil {
		return "", nil, err
	}

	orderID, _ := order["id"].(string)
	if orderID == "" {
		return "", nil, errors.New("razorpay order response missing id")
	}
	log.Info().Str("order_id", orderID).Str("receipt", receipt).Msg("razorpay order created")
	return orderID, raw, nil
}

// VerifySignature checks the HMAC the provider hands to the client
// after checkout.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g.mockMode {
		return signature != ""
	}
	return utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, g.keySecret)
}

// FetchPayment retrieves the payment from the provider; the returned
// status is the provider's own ("captured", "authorized", "failed").
func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (string, json.RawMessage, error) {
	if g.mockMode {
		raw, err := json.Marshal(map[string]any{
			"id":     paymentID,
			"status": "captured",
			"method": "upi",
		})
		if err != nil {
			return "", nil, err
		}
		return "captured", raw, nil
	}

	if g.client == nil {
		return "", nil, ErrGatewayNotConfigured
	}

	payment, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("razorpay payment fetch failed")
		return "", nil, err
	}

	raw, err := json.Marshal(payment)
	if err != nil {
		return "", nil, err
	}

	status, _ := payment["status"].(string)
	return status, raw, nil
}
