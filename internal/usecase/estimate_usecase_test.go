package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"eprinter/internal/printcalc"
	mock_interfaces "eprinter/internal/usecase/interfaces/mocks"
)

func TestEstimateUseCase_Estimate(t *testing.T) {
	t.Run("pricing unavailable never guesses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mock_interfaces.NewMockIPricingSource(ctrl)
		uc := NewEstimateUseCase(pricing)

		pricing.EXPECT().FetchSnapshot(gomock.Any()).Return(printcalc.Snapshot{}, &printcalc.PricingUnavailableError{})

		_, err := uc.Estimate(context.Background(), "all", 10, 1, printcalc.ModeMonochrome)
		var pu *printcalc.PricingUnavailableError
		if !errors.As(err, &pu) {
			t.Fatalf("expected PricingUnavailableError, got %v", err)
		}
	})

	t.Run("resolution failure propagates its kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mock_interfaces.NewMockIPricingSource(ctrl)
		uc := NewEstimateUseCase(pricing)

		pricing.EXPECT().FetchSnapshot(gomock.Any()).Return(openSnapshot(), nil)

		_, err := uc.Estimate(context.Background(), "5-3", 10, 1, printcalc.ModeMonochrome)
		var inv *printcalc.InvertedRangeError
		if !errors.As(err, &inv) {
			t.Fatalf("expected InvertedRangeError, got %v", err)
		}
	})

	t.Run("advisory estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mock_interfaces.NewMockIPricingSource(ctrl)
		uc := NewEstimateUseCase(pricing)

		pricing.EXPECT().FetchSnapshot(gomock.Any()).Return(openSnapshot(), nil)

		est, err := uc.Estimate(context.Background(), "1-4", 10, 2, printcalc.ModeColor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Impressions != 8 || est.TotalCost.String() != "80" {
			t.Fatalf("unexpected estimate: %+v", est)
		}
	})
}
