package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"eprinter/internal/config"
	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

// AdminStore is the seed's view of admin persistence.
type AdminStore interface {
	EnsureAdmin(ctx context.Context, a entities.Admin) (created bool, err error)
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way: the admin
// account and a default settings item, each created only when absent.
func Run(ctx context.Context, admins AdminStore, settings interfaces.ISettingsRepository, cfg config.SeedConfig) (Stats, error) {
	stats := Stats{}

	if err := seedAdmin(ctx, admins, cfg, &stats); err != nil {
		return Stats{}, err
	}
	if err := ensureSettings(ctx, settings, &stats); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

func seedAdmin(ctx context.Context, admins AdminStore, cfg config.SeedConfig, stats *Stats) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	created, err := admins.EnsureAdmin(ctx, entities.Admin{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("ensure admin account: %w", err)
	}
	if created {
		stats.Inserts++
	}
	return nil
}

func ensureSettings(ctx context.Context, repo interfaces.ISettingsRepository, stats *Stats) error {
	current, err := repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("check settings existence: %w", err)
	}
	if current.MaxCopies > 0 {
		return nil
	}

	if _, err := repo.Put(ctx, defaultSettings()); err != nil {
		return fmt.Errorf("insert default settings: %w", err)
	}
	stats.Inserts++
	return nil
}

func defaultSettings() entities.Settings {
	return entities.Settings{
		PriceMonochrome:      decimal.NewFromInt(1),
		PriceColor:           decimal.NewFromInt(5),
		Currency:             "INR",
		MaxCopies:            50,
		MaxFileSizeBytes:     25 << 20,
		AcceptedContentTypes: []string{"application/pdf", "image/jpeg", "image/png"},
		OpenHour:             8,
		CloseHour:            20,
		UpdatedAt:            time.Now().UTC(),
	}
}
