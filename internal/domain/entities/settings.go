package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"eprinter/internal/printcalc"
)

var (
	ErrNegativePrice        = errors.New("price per impression must not be negative")
	ErrInvalidMaxCopies     = errors.New("max copies must be at least 1")
	ErrInvalidFileSizeLimit = errors.New("max file size must be positive")
	ErrNoAcceptedTypes      = errors.New("at least one accepted content type is required")
	ErrInvalidWindow        = errors.New("availability hours must be within 0-23")
)

// Settings is the admin-managed service configuration: the pricing table,
// the copies policy, upload constraints and the availability window. It is
// the single PricingSource record; estimates and authoritative charges
// both read it, each through its own fresh snapshot.
//
// Storage model (DynamoDB): single item, PK id = "current".
type Settings struct {
	PriceMonochrome      decimal.Decimal `json:"price_monochrome"`
	PriceColor           decimal.Decimal `json:"price_color"`
	Currency             string          `json:"currency"`
	MaxCopies            int             `json:"max_copies"`
	MaxFileSizeBytes     int64           `json:"max_file_size_bytes"`
	AcceptedContentTypes []string        `json:"accepted_content_types"`
	OpenHour             int             `json:"open_hour"`
	CloseHour            int             `json:"close_hour"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// Validate enforces the pricing-table invariants before a settings write.
func (s Settings) Validate() error {
	if s.PriceMonochrome.IsNegative() || s.PriceColor.IsNegative() {
		return ErrNegativePrice
	}
	if s.MaxCopies < 1 {
		return ErrInvalidMaxCopies
	}
	if s.MaxFileSizeBytes <= 0 {
		return ErrInvalidFileSizeLimit
	}
	if len(s.AcceptedContentTypes) == 0 {
		return ErrNoAcceptedTypes
	}
	if s.OpenHour < 0 || s.OpenHour > 23 || s.CloseHour < 0 || s.CloseHour > 23 {
		return ErrInvalidWindow
	}
	return nil
}

// Snapshot freezes the settings into the immutable form a single cost
// computation works with.
func (s Settings) Snapshot(fetchedAt time.Time) printcalc.Snapshot {
	types := make([]string, len(s.AcceptedContentTypes))
	copy(types, s.AcceptedContentTypes)
	return printcalc.Snapshot{
		Table: printcalc.PricingTable{
			Monochrome: s.PriceMonochrome,
			Color:      s.PriceColor,
		},
		Currency:             s.Currency,
		MaxCopies:            s.MaxCopies,
		MaxFileSizeBytes:     s.MaxFileSizeBytes,
		AcceptedContentTypes: types,
		OpenHour:             s.OpenHour,
		CloseHour:            s.CloseHour,
		FetchedAt:            fetchedAt,
	}
}
