package entities

import "time"

// Document is an uploaded file the shop can print.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PageCount is counted server-side from the stored file at upload time
// and is the authoritative total used for every page-range resolution;
// whatever total the client sends with a job is treated as a claim.
type Document struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   int       `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
