package response

import (
	"time"

	"eprinter/internal/domain/entities"
)

// PrintJobResponse is the job as the client sees it. TotalCost is the
// authoritative server price; price_changed tells the client its local
// estimate diverged and the shown total superseded it.
type PrintJobResponse struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	PickupCode   string    `json:"pickup_code"`
	Expression   string    `json:"expression"`
	TotalPages   int       `json:"total_pages"`
	Pages        []int     `json:"pages"`
	Copies       int       `json:"copies"`
	Mode         string    `json:"mode"`
	PaperSize    string    `json:"paper_size"`
	Orientation  string    `json:"orientation"`
	Duplex       bool      `json:"duplex"`
	Impressions  int       `json:"impressions"`
	UnitPrice    string    `json:"unit_price"`
	TotalCost    string    `json:"total_cost"`
	Currency     string    `json:"currency"`
	PriceChanged bool      `json:"price_changed"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPrintJob(j entities.PrintJob) PrintJobResponse {
	return PrintJobResponse{
		ID:           j.ID,
		DocumentID:   j.DocumentID,
		PickupCode:   j.PickupCode,
		Expression:   j.Expression,
		TotalPages:   j.TotalPages,
		Pages:        j.Pages,
		Copies:       j.Copies,
		Mode:         string(j.Mode),
		PaperSize:    string(j.PaperSize),
		Orientation:  string(j.Orientation),
		Duplex:       j.Duplex,
		Impressions:  j.Impressions,
		UnitPrice:    j.UnitPrice.String(),
		TotalCost:    j.TotalCost.StringFixed(2),
		Currency:     j.Currency,
		PriceChanged: j.PriceChanged,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func FromPrintJobs(jobs []entities.PrintJob) []PrintJobResponse {
	out := make([]PrintJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromPrintJob(j))
	}
	return out
}
