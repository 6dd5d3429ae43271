package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentID   = errors.New("invalid document id")
	ErrFileTooLarge        = errors.New("file exceeds the configured size limit")
	ErrUnsupportedFileType = errors.New("file type not accepted")
	ErrUnreadableDocument  = errors.New("document could not be read")
)

// IDocumentUseCase handles document intake. Constraints (size ceiling,
// accepted types) come from the current settings snapshot; the page
// count is taken from the stored file itself, never from the client.

type IDocumentUseCase interface {
	Upload(ctx context.Context, fileName, tempPath string) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
}

type DocumentUseCase struct {
	repo      interfaces.IDocumentRepository
	store     interfaces.IDocumentStore
	inspector interfaces.IDocumentInspector
	pricing   interfaces.IPricingSource
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	repo interfaces.IDocumentRepository,
	store interfaces.IDocumentStore,
	inspector interfaces.IDocumentInspector,
	pricing interfaces.IPricingSource,
) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, store: store, inspector: inspector, pricing: pricing}
}

// Upload validates the file at tempPath against the current constraints,
// stores the blob and persists the document metadata. The caller owns
// tempPath and removes it afterwards.
func (u *DocumentUseCase) Upload(ctx context.Context, fileName, tempPath string) (entities.Document, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		fileName = "document.pdf"
	}

	snap, err := u.pricing.FetchSnapshot(ctx)
	if err != nil {
		return entities.Document{}, err
	}

	info, err := os.Stat(tempPath)
	if err != nil {
		return entities.Document{}, fmt.Errorf("stat upload: %w", err)
	}
	if info.Size() > snap.MaxFileSizeBytes {
		return entities.Document{}, ErrFileTooLarge
	}

	contentType, pageCount, err := u.inspector.Inspect(ctx, tempPath)
	if err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("document inspection failed")
		return entities.Document{}, ErrUnreadableDocument
	}
	if !snap.Accepts(contentType) {
		return entities.Document{}, ErrUnsupportedFileType
	}

	id := uuid.NewString()
	key := path.Join("documents", id+strings.ToLower(path.Ext(fileName)))

	f, err := os.Open(tempPath)
	if err != nil {
		return entities.Document{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if err := u.store.Put(ctx, key, f, info.Size(), contentType); err != nil {
		return entities.Document{}, err
	}

	doc := entities.Document{
		ID:          id,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   info.Size(),
		PageCount:   pageCount,
		StorageKey:  key,
		UploadedAt:  time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, doc)
	if err != nil {
		// best effort: do not leave an orphan blob behind
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("orphan blob cleanup failed")
		}
		return entities.Document{}, err
	}

	log.Info().Str("document_id", created.ID).Int("pages", created.PageCount).
		Int64("bytes", created.SizeBytes).Msg("document stored")
	return created, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}
