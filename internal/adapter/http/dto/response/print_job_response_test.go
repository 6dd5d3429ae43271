package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"eprinter/internal/domain/entities"
	"eprinter/internal/printcalc"
)

func TestFromPrintJob(t *testing.T) {
	now := time.Now().UTC()
	j := entities.PrintJob{
		ID:           "job-1",
		DocumentID:   "doc-1",
		PickupCode:   "AB12CD34",
		Expression:   "1-3,5",
		TotalPages:   10,
		Pages:        []int{1, 2, 3, 5},
		Copies:       2,
		Mode:         printcalc.ModeColor,
		PaperSize:    printcalc.PaperA4,
		Orientation:  printcalc.OrientationPortrait,
		Impressions:  8,
		UnitPrice:    decimal.NewFromFloat(5),
		TotalCost:    decimal.NewFromFloat(40),
		Currency:     "INR",
		PriceChanged: true,
		Status:       entities.PrintJobStatusPendingPayment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromPrintJob(j)
	if res.ID != "job-1" || res.PickupCode != "AB12CD34" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.TotalCost != "40.00" || res.Currency != "INR" {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if !res.PriceChanged || res.Status != "pending_payment" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if len(res.Pages) != 4 || res.Impressions != 8 {
		t.Fatalf("unexpected selection fields: %+v", res)
	}
}

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := printcalc.Estimate{
		PageCount:   4,
		Copies:      2,
		Mode:        printcalc.ModeColor,
		Impressions: 8,
		UnitPrice:   decimal.NewFromFloat(5),
		TotalCost:   decimal.NewFromFloat(40),
		Currency:    "INR",
		PricedAt:    now,
	}

	res := FromEstimate(e)
	if res.TotalCost != "40.00" || res.Impressions != 8 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Advisory {
		t.Fatalf("estimate responses must be marked advisory")
	}
	if !res.PricedAt.Equal(now) {
		t.Fatalf("unexpected priced_at: %+v", res)
	}
}
