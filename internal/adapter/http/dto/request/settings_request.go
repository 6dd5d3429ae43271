package request

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"eprinter/internal/domain/entities"
)

// SettingsRequest replaces the active shop configuration. Prices travel
// as decimal strings so the stored values are exactly what the admin
// typed.
type SettingsRequest struct {
	PriceMonochrome      string   `json:"price_monochrome" binding:"required"`
	PriceColor           string   `json:"price_color" binding:"required"`
	Currency             string   `json:"currency" binding:"required"`
	MaxCopies            int      `json:"max_copies" binding:"required"`
	MaxFileSizeBytes     int64    `json:"max_file_size_bytes" binding:"required"`
	AcceptedContentTypes []string `json:"accepted_content_types" binding:"required"`
	OpenHour             int      `json:"open_hour"`
	CloseHour            int      `json:"close_hour"`
}

// ToSettings parses the payload into the settings entity. Semantic
// validation (non-negative prices, sane window) happens in the usecase.
func (r SettingsRequest) ToSettings() (entities.Settings, error) {
	mono, err := decimal.NewFromString(strings.TrimSpace(r.PriceMonochrome))
	if err != nil {
		return entities.Settings{}, fmt.Errorf("invalid price_monochrome %q: %w", r.PriceMonochrome, err)
	}
	color, err := decimal.NewFromString(strings.TrimSpace(r.PriceColor))
	if err != nil {
		return entities.Settings{}, fmt.Errorf("invalid price_color %q: %w", r.PriceColor, err)
	}
	return entities.Settings{
		PriceMonochrome:      mono,
		PriceColor:           color,
		Currency:             strings.ToUpper(strings.TrimSpace(r.Currency)),
		MaxCopies:            r.MaxCopies,
		MaxFileSizeBytes:     r.MaxFileSizeBytes,
		AcceptedContentTypes: r.AcceptedContentTypes,
		OpenHour:             r.OpenHour,
		CloseHour:            r.CloseHour,
	}, nil
}
