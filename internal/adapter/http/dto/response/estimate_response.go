package response

import (
	"time"

	"eprinter/internal/printcalc"
)

// EstimateResponse is the advisory quote returned to the client form.
// Money fields are fixed-point decimal strings.
type EstimateResponse struct {
	PageCount   int       `json:"page_count"`
	Copies      int       `json:"copies"`
	Mode        string    `json:"mode"`
	Impressions int       `json:"impressions"`
	UnitPrice   string    `json:"unit_price"`
	TotalCost   string    `json:"total_cost"`
	Currency    string    `json:"currency"`
	PricedAt    time.Time `json:"priced_at"`
	Advisory    bool      `json:"advisory"`
}

func FromEstimate(e printcalc.Estimate) EstimateResponse {
	return EstimateResponse{
		PageCount:   e.PageCount,
		Copies:      e.Copies,
		Mode:        string(e.Mode),
		Impressions: e.Impressions,
		UnitPrice:   e.UnitPrice.String(),
		TotalCost:   e.TotalCost.StringFixed(2),
		Currency:    e.Currency,
		PricedAt:    e.PricedAt,
		Advisory:    true,
	}
}
