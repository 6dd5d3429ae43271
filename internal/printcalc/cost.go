package printcalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode is a print mode with an entry in the pricing table.
type Mode string

const (
	ModeMonochrome Mode = "monochrome"
	ModeColor      Mode = "color"
)

// PricingTable maps a print mode to its price per impression.
type PricingTable struct {
	Monochrome decimal.Decimal
	Color      decimal.Decimal
}

// UnitPrice returns the per-impression price for mode. The bool is false
// for modes the table knows nothing about; callers must not default it.
func (t PricingTable) UnitPrice(mode Mode) (decimal.Decimal, bool) {
	switch mode {
	case ModeMonochrome:
		return t.Monochrome, true
	case ModeColor:
		return t.Color, true
	default:
		return decimal.Decimal{}, false
	}
}

// Snapshot is a point-in-time capture of the pricing source. A single
// cost computation uses exactly one snapshot; callers fetch a fresh one
// per computation instead of holding a hidden cache.
type Snapshot struct {
	Table                PricingTable
	Currency             string
	MaxCopies            int
	MaxFileSizeBytes     int64
	AcceptedContentTypes []string
	OpenHour             int
	CloseHour            int
	FetchedAt            time.Time
}

// OpenAt reports whether the print service accepts submissions at t.
// Equal open and close hours mean the service is always open.
func (s Snapshot) OpenAt(t time.Time) bool {
	if s.OpenHour == s.CloseHour {
		return true
	}
	h := t.Hour()
	if s.OpenHour < s.CloseHour {
		return h >= s.OpenHour && h < s.CloseHour
	}
	// window wraps past midnight
	return h >= s.OpenHour || h < s.CloseHour
}

// Accepts reports whether contentType is allowed for uploads.
func (s Snapshot) Accepts(contentType string) bool {
	for _, ct := range s.AcceptedContentTypes {
		if ct == contentType {
			return true
		}
	}
	return false
}

// Estimate is the immutable result of one cost computation. It echoes
// its inputs and the snapshot timestamp so a consumer can audit which
// pricing produced the number.
type Estimate struct {
	PageCount   int
	Copies      int
	Mode        Mode
	Impressions int
	UnitPrice   decimal.Decimal
	TotalCost   decimal.Decimal
	Currency    string
	PricedAt    time.Time
}

// EstimateCost computes impressions and total price for a resolved page
// count. Impressions are an exact integer product; the total is rounded
// half-up to 2 decimal places exactly once, at the end. Per-page rounding
// would drift from the client across many pages, so there is none.
func EstimateCost(pageCount, copies int, mode Mode, snap Snapshot) (Estimate, error) {
	if pageCount < 1 {
		return Estimate{}, &EmptySelectionError{}
	}
	if copies < 1 || copies > snap.MaxCopies {
		return Estimate{}, &CopiesOutOfRangeError{Copies: copies, Max: snap.MaxCopies}
	}
	unit, ok := snap.Table.UnitPrice(mode)
	if !ok {
		return Estimate{}, &UnknownModeError{Mode: string(mode)}
	}

	impressions := pageCount * copies
	total := unit.Mul(decimal.NewFromInt(int64(impressions))).Round(2)

	return Estimate{
		PageCount:   pageCount,
		Copies:      copies,
		Mode:        mode,
		Impressions: impressions,
		UnitPrice:   unit,
		TotalCost:   total,
		Currency:    snap.Currency,
		PricedAt:    snap.FetchedAt,
	}, nil
}
