package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"eprinter/internal/usecase/interfaces"
)

// Inspector determines the real content type of an uploaded file from
// its magic bytes and counts its pages. The client-declared type and
// page total are never trusted; this is where the authoritative values
// come from.

type Inspector struct{}

var _ interfaces.IDocumentInspector = (*Inspector)(nil)

func NewInspector() *Inspector {
	return &Inspector{}
}

func (i *Inspector) Inspect(ctx context.Context, path string) (string, int, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("detect content type: %w", err)
	}
	contentType := mtype.String()

	switch {
	case mtype.Is("application/pdf"):
		count, err := api.PageCountFile(path)
		if err != nil {
			return contentType, 0, fmt.Errorf("count pdf pages: %w", err)
		}
		if count < 1 {
			return contentType, 0, fmt.Errorf("pdf has no pages")
		}
		return contentType, count, nil
	case strings.HasPrefix(contentType, "image/"):
		// One image, one page.
		return contentType, 1, nil
	default:
		return contentType, 1, nil
	}
}
