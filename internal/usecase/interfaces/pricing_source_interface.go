package interfaces

import (
	"context"

	"eprinter/internal/printcalc"
)

// IPricingSource supplies pricing snapshots. Implementations must fetch
// with a short timeout and fail with printcalc.PricingUnavailableError
// instead of guessing a price; the caller decides whether advisory
// behavior ("estimate unavailable") is acceptable.
type IPricingSource interface {
	FetchSnapshot(ctx context.Context) (printcalc.Snapshot, error)
}
