package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"eprinter/internal/domain/entities"
	"eprinter/internal/printcalc"
	mock_interfaces "eprinter/internal/usecase/interfaces/mocks"
)

func TestSettingsPricingSource_FetchSnapshot(t *testing.T) {
	t.Run("repository failure maps to pricing unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		src := NewSettingsPricingSource(repo, time.Second)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, errors.New("dynamo down"))

		_, err := src.FetchSnapshot(context.Background())
		var pu *printcalc.PricingUnavailableError
		if !errors.As(err, &pu) {
			t.Fatalf("expected PricingUnavailableError, got %v", err)
		}
	})

	t.Run("uninitialized settings are unavailable, not defaulted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		src := NewSettingsPricingSource(repo, time.Second)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, nil)

		_, err := src.FetchSnapshot(context.Background())
		var pu *printcalc.PricingUnavailableError
		if !errors.As(err, &pu) {
			t.Fatalf("expected PricingUnavailableError, got %v", err)
		}
	})

	t.Run("snapshot freezes the settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		src := NewSettingsPricingSource(repo, time.Second)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{
			PriceMonochrome:      decimal.NewFromFloat(1.5),
			PriceColor:           decimal.NewFromFloat(7),
			Currency:             "INR",
			MaxCopies:            25,
			MaxFileSizeBytes:     10 << 20,
			AcceptedContentTypes: []string{"application/pdf"},
		}, nil)

		snap, err := src.FetchSnapshot(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.MaxCopies != 25 || !snap.Table.Color.Equal(decimal.NewFromFloat(7)) {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if snap.FetchedAt.IsZero() {
			t.Fatalf("expected fetch timestamp")
		}
	})
}

func TestSettingsUseCase_Update(t *testing.T) {
	valid := entities.Settings{
		PriceMonochrome:      decimal.NewFromFloat(2),
		PriceColor:           decimal.NewFromFloat(10),
		Currency:             "INR",
		MaxCopies:            50,
		MaxFileSizeBytes:     25 << 20,
		AcceptedContentTypes: []string{"application/pdf"},
		OpenHour:             8,
		CloseHour:            20,
	}

	t.Run("rejects negative price", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		s := valid
		s.PriceColor = decimal.NewFromFloat(-1)
		_, err := uc.Update(context.Background(), s)
		if !errors.Is(err, entities.ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("rejects zero max copies", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		s := valid
		s.MaxCopies = 0
		_, err := uc.Update(context.Background(), s)
		if !errors.Is(err, entities.ErrInvalidMaxCopies) {
			t.Fatalf("expected ErrInvalidMaxCopies, got %v", err)
		}
	})

	t.Run("stamps update time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Settings{})).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) {
				if s.UpdatedAt.IsZero() {
					t.Fatalf("expected updated_at")
				}
				return s, nil
			},
		)

		if _, err := uc.Update(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
