package response

import (
	"time"

	"eprinter/internal/domain/entities"
)

// DocumentResponse describes an uploaded file. page_count is the
// server-counted total the client should resolve page ranges against.
type DocumentResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   int       `json:"page_count"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		PageCount:   d.PageCount,
		UploadedAt:  d.UploadedAt,
	}
}
