package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"eprinter/internal/adapter/http/handlers/mocks"
	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase"
)

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestDocumentHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/documents", h.Upload)

		body, contentType := multipartUpload(t, "attachment", "notes.pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stores the document and returns page count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/documents", h.Upload)

		uc.EXPECT().
			Upload(gomock.Any(), "notes.pdf", gomock.Any()).
			Return(entities.Document{
				ID:          "doc-1",
				FileName:    "notes.pdf",
				ContentType: "application/pdf",
				SizeBytes:   8,
				PageCount:   12,
				UploadedAt:  time.Now().UTC(),
			}, nil)

		body, contentType := multipartUpload(t, "file", "notes.pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["id"] != "doc-1" || res["page_count"] != float64(12) {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("unsupported type maps to 415", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/documents", h.Upload)

		uc.EXPECT().
			Upload(gomock.Any(), "shady.exe", gomock.Any()).
			Return(entities.Document{}, usecase.ErrUnsupportedFileType)

		body, contentType := multipartUpload(t, "file", "shady.exe", []byte{0x4d, 0x5a})
		req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415, got %d", w.Code)
		}
	})

	t.Run("oversize maps to 413", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/documents", h.Upload)

		uc.EXPECT().
			Upload(gomock.Any(), "big.pdf", gomock.Any()).
			Return(entities.Document{}, usecase.ErrFileTooLarge)

		body, contentType := multipartUpload(t, "file", "big.pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.GET("/v1/documents/:id", h.GetByID)

		uc.EXPECT().
			GetByID(gomock.Any(), "doc-1").
			Return(entities.Document{ID: "doc-1", PageCount: 12}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.GET("/v1/documents/:id", h.GetByID)

		uc.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(entities.Document{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
