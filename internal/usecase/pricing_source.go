package usecase

import (
	"context"
	"errors"
	"time"

	"eprinter/internal/metrics"
	"eprinter/internal/printcalc"
	"eprinter/internal/usecase/interfaces"
)

// SettingsPricingSource fetches pricing snapshots from the settings
// repository with a short timeout. A fetch failure is surfaced as
// PricingUnavailableError; there is no fallback table, stale or
// hard-coded, for authoritative computations.
type SettingsPricingSource struct {
	repo    interfaces.ISettingsRepository
	timeout time.Duration
}

var _ interfaces.IPricingSource = (*SettingsPricingSource)(nil)

func NewSettingsPricingSource(repo interfaces.ISettingsRepository, timeout time.Duration) *SettingsPricingSource {
	return &SettingsPricingSource{repo: repo, timeout: timeout}
}

func (s *SettingsPricingSource) FetchSnapshot(ctx context.Context) (printcalc.Snapshot, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	settings, err := s.repo.Get(ctx)
	metrics.ObservePricingFetch(time.Since(start).Seconds())
	if err != nil {
		return printcalc.Snapshot{}, &printcalc.PricingUnavailableError{Cause: err}
	}
	if settings.MaxCopies == 0 {
		return printcalc.Snapshot{}, &printcalc.PricingUnavailableError{Cause: errors.New("settings not initialized")}
	}
	return settings.Snapshot(time.Now().UTC()), nil
}
