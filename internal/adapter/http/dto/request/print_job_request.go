package request

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"eprinter/internal/printcalc"
)

// PrintJobRequest is the submission payload. total_pages and
// client_estimate carry what the client computed locally so the server
// can flag divergence; the server always reprices from its own data.
type PrintJobRequest struct {
	DocumentID  string          `json:"document_id" binding:"required"`
	Expression  string          `json:"expression"`
	TotalPages  int             `json:"total_pages"`
	Copies      int             `json:"copies"`
	Mode        string          `json:"mode" binding:"required"`
	PaperSize   string          `json:"paper_size"`
	Orientation string          `json:"orientation"`
	Duplex      bool            `json:"duplex"`
	ClientCost  *ClientEstimate `json:"client_estimate"`
}

// ClientEstimate mirrors the total the client showed the user, as a
// decimal string so no float conversion happens on the way in.
type ClientEstimate struct {
	TotalCost string `json:"total_cost" binding:"required"`
}

// ResolveOptions builds the print options from the raw payload fields.
func (r PrintJobRequest) ResolveOptions() printcalc.Options {
	copies := r.Copies
	if copies == 0 {
		copies = 1
	}
	return printcalc.Options{
		Copies:      copies,
		Mode:        printcalc.Mode(strings.ToLower(strings.TrimSpace(r.Mode))),
		PaperSize:   printcalc.PaperSize(strings.ToLower(strings.TrimSpace(r.PaperSize))),
		Orientation: printcalc.Orientation(strings.ToLower(strings.TrimSpace(r.Orientation))),
		Duplex:      r.Duplex,
	}
}

// ResolveClientTotalCost parses the client-side total when present.
func (r PrintJobRequest) ResolveClientTotalCost() (*decimal.Decimal, error) {
	if r.ClientCost == nil {
		return nil, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(r.ClientCost.TotalCost))
	if err != nil {
		return nil, fmt.Errorf("invalid client total_cost %q: %w", r.ClientCost.TotalCost, err)
	}
	return &value, nil
}
