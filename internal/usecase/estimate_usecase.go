package usecase

import (
	"context"

	"eprinter/internal/printcalc"
	"eprinter/internal/usecase/interfaces"
)

// IEstimateUseCase computes advisory estimates for the client form. It
// runs exactly the same Resolve/EstimateCost pair the submission path
// runs; the only inputs that can differ are the claimed page count and
// the pricing snapshot, which is why the result is advisory.

type IEstimateUseCase interface {
	Estimate(ctx context.Context, expression string, totalPages, copies int, mode printcalc.Mode) (printcalc.Estimate, error)
}

type EstimateUseCase struct {
	pricing interfaces.IPricingSource
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(pricing interfaces.IPricingSource) *EstimateUseCase {
	return &EstimateUseCase{pricing: pricing}
}

func (u *EstimateUseCase) Estimate(ctx context.Context, expression string, totalPages, copies int, mode printcalc.Mode) (printcalc.Estimate, error) {
	snap, err := u.pricing.FetchSnapshot(ctx)
	if err != nil {
		return printcalc.Estimate{}, err
	}

	sel, err := printcalc.Resolve(expression, totalPages)
	if err != nil {
		return printcalc.Estimate{}, err
	}
	return printcalc.EstimateCost(sel.Count, copies, mode, snap)
}
