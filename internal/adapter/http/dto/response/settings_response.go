package response

import (
	"time"

	"eprinter/internal/domain/entities"
)

type SettingsResponse struct {
	PriceMonochrome      string    `json:"price_monochrome"`
	PriceColor           string    `json:"price_color"`
	Currency             string    `json:"currency"`
	MaxCopies            int       `json:"max_copies"`
	MaxFileSizeBytes     int64     `json:"max_file_size_bytes"`
	AcceptedContentTypes []string  `json:"accepted_content_types"`
	OpenHour             int       `json:"open_hour"`
	CloseHour            int       `json:"close_hour"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		PriceMonochrome:      s.PriceMonochrome.String(),
		PriceColor:           s.PriceColor.String(),
		Currency:             s.Currency,
		MaxCopies:            s.MaxCopies,
		MaxFileSizeBytes:     s.MaxFileSizeBytes,
		AcceptedContentTypes: s.AcceptedContentTypes,
		OpenHour:             s.OpenHour,
		CloseHour:            s.CloseHour,
		UpdatedAt:            s.UpdatedAt,
	}
}
