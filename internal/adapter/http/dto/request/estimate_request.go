package request

import (
	"strings"

	"eprinter/internal/printcalc"
)

// EstimateRequest is the advisory-estimate payload sent by the client
// form on every visible change to selection, copies or mode. TotalPages
// is whatever the client currently believes; the response is advisory
// either way.
type EstimateRequest struct {
	Expression string `json:"expression"`
	TotalPages int    `json:"total_pages" binding:"required"`
	Copies     int    `json:"copies"`
	Mode       string `json:"mode" binding:"required"`
}

// ResolveCopies defaults an omitted copies field to a single copy.
func (r EstimateRequest) ResolveCopies() int {
	if r.Copies == 0 {
		return 1
	}
	return r.Copies
}

// ResolveMode normalizes the mode token; whether the mode is priced is
// decided by the pricing table, not here.
func (r EstimateRequest) ResolveMode() printcalc.Mode {
	return printcalc.Mode(strings.ToLower(strings.TrimSpace(r.Mode)))
}
