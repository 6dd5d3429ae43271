package printcalc

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Table: PricingTable{
			Monochrome: decimal.NewFromFloat(1.0),
			Color:      decimal.NewFromFloat(5.0),
		},
		Currency:  "INR",
		MaxCopies: 50,
		FetchedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestEstimateCost(t *testing.T) {
	t.Run("color multiplication", func(t *testing.T) {
		est, err := EstimateCost(4, 2, ModeColor, testSnapshot())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Impressions != 8 {
			t.Fatalf("expected 8 impressions, got %d", est.Impressions)
		}
		if !est.UnitPrice.Equal(decimal.NewFromFloat(5.0)) {
			t.Fatalf("unexpected unit price: %s", est.UnitPrice)
		}
		if est.TotalCost.String() != "40" {
			t.Fatalf("expected total 40, got %s", est.TotalCost)
		}
	})

	t.Run("cost strictly increases with copies", func(t *testing.T) {
		one, err := EstimateCost(3, 1, ModeMonochrome, testSnapshot())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		two, err := EstimateCost(3, 2, ModeMonochrome, testSnapshot())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if one.TotalCost.String() != "3" || two.TotalCost.String() != "6" {
			t.Fatalf("expected 3 then 6, got %s then %s", one.TotalCost, two.TotalCost)
		}
		if !two.TotalCost.GreaterThan(one.TotalCost) {
			t.Fatalf("cost did not increase with copies")
		}
	})

	t.Run("monotonic in pages and copies", func(t *testing.T) {
		snap := testSnapshot()
		prev := decimal.Zero
		for pages := 1; pages <= 30; pages++ {
			est, err := EstimateCost(pages, 1, ModeMonochrome, snap)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if est.TotalCost.LessThan(prev) {
				t.Fatalf("cost decreased at %d pages", pages)
			}
			prev = est.TotalCost
		}
	})

	t.Run("rounds half up once at the end", func(t *testing.T) {
		snap := testSnapshot()
		// 0.015 per impression: 7 impressions = 0.105, rounded once is 0.11.
		// Rounding per page (0.02 each) would give 0.14 instead.
		snap.Table.Monochrome = decimal.NewFromFloat(0.015)
		est, err := EstimateCost(7, 1, ModeMonochrome, snap)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.TotalCost.String() != "0.11" {
			t.Fatalf("expected 0.11, got %s", est.TotalCost)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		snap := testSnapshot()
		first, err := EstimateCost(13, 3, ModeColor, snap)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < 5; i++ {
			again, err := EstimateCost(13, 3, ModeColor, snap)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !again.TotalCost.Equal(first.TotalCost) || again.Impressions != first.Impressions {
				t.Fatalf("estimate not idempotent: %+v vs %+v", first, again)
			}
		}
	})

	t.Run("copies below one", func(t *testing.T) {
		_, err := EstimateCost(3, 0, ModeMonochrome, testSnapshot())
		var oor *CopiesOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("expected CopiesOutOfRangeError, got %v", err)
		}
	})

	t.Run("copies above policy maximum", func(t *testing.T) {
		_, err := EstimateCost(3, 51, ModeMonochrome, testSnapshot())
		var oor *CopiesOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("expected CopiesOutOfRangeError, got %v", err)
		}
		if oor.Max != 50 {
			t.Fatalf("expected policy max 50, got %d", oor.Max)
		}
	})

	t.Run("unknown mode is an error not a default", func(t *testing.T) {
		_, err := EstimateCost(3, 1, Mode("sepia"), testSnapshot())
		var um *UnknownModeError
		if !errors.As(err, &um) {
			t.Fatalf("expected UnknownModeError, got %v", err)
		}
	})

	t.Run("zero pages", func(t *testing.T) {
		_, err := EstimateCost(0, 1, ModeMonochrome, testSnapshot())
		var empty *EmptySelectionError
		if !errors.As(err, &empty) {
			t.Fatalf("expected EmptySelectionError, got %v", err)
		}
	})
}

// Client and server both run Resolve then EstimateCost. With the same
// expression, page count and snapshot they must agree exactly.
func TestClientServerAgreement(t *testing.T) {
	snap := testSnapshot()
	exprs := []string{"all", "1-3,5", "2,4,6,8", "1-20", "19,1-5,19"}
	for _, expr := range exprs {
		clientSel, err := Resolve(expr, 20)
		if err != nil {
			t.Fatalf("client resolve %q: %v", expr, err)
		}
		serverSel, err := Resolve(expr, 20)
		if err != nil {
			t.Fatalf("server resolve %q: %v", expr, err)
		}
		clientEst, err := EstimateCost(clientSel.Count, 3, ModeColor, snap)
		if err != nil {
			t.Fatalf("client estimate %q: %v", expr, err)
		}
		serverEst, err := EstimateCost(serverSel.Count, 3, ModeColor, snap)
		if err != nil {
			t.Fatalf("server estimate %q: %v", expr, err)
		}
		if !clientEst.TotalCost.Equal(serverEst.TotalCost) || clientEst.Impressions != serverEst.Impressions {
			t.Fatalf("disagreement for %q: %+v vs %+v", expr, clientEst, serverEst)
		}
	}
}

func TestSnapshotOpenAt(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 3, 1, h, 30, 0, 0, time.UTC) }

	t.Run("always open when hours equal", func(t *testing.T) {
		s := Snapshot{OpenHour: 0, CloseHour: 0}
		if !s.OpenAt(at(3)) {
			t.Fatalf("expected open")
		}
	})

	t.Run("daytime window", func(t *testing.T) {
		s := Snapshot{OpenHour: 8, CloseHour: 20}
		if !s.OpenAt(at(8)) || !s.OpenAt(at(19)) {
			t.Fatalf("expected open inside window")
		}
		if s.OpenAt(at(7)) || s.OpenAt(at(20)) {
			t.Fatalf("expected closed outside window")
		}
	})

	t.Run("window wrapping midnight", func(t *testing.T) {
		s := Snapshot{OpenHour: 22, CloseHour: 6}
		if !s.OpenAt(at(23)) || !s.OpenAt(at(2)) {
			t.Fatalf("expected open inside wrapped window")
		}
		if s.OpenAt(at(12)) {
			t.Fatalf("expected closed at noon")
		}
	})
}
