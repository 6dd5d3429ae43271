package usecase

import (
	"context"
	"errors"
	"time"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

var ErrSettingsNotFound = errors.New("settings not found")

// ISettingsUseCase exposes the admin-facing settings operations. Pricing
// changes take effect on the next snapshot fetch; computations already in
// flight keep the snapshot they started with.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if s.MaxCopies == 0 {
		return entities.Settings{}, ErrSettingsNotFound
	}
	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	if err := s.Validate(); err != nil {
		return entities.Settings{}, err
	}
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, s)
}
