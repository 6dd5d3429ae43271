package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"eprinter/internal/adapter/http/handlers/mocks"
	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase"
)

func settingsRouter(h *SettingsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/settings", h.Get)
	r.PUT("/v1/settings", h.Put)
	return r
}

func TestSettingsHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns current settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().Get(gomock.Any()).Return(entities.Settings{
			PriceMonochrome:      decimal.NewFromFloat(1),
			PriceColor:           decimal.NewFromFloat(5),
			Currency:             "INR",
			MaxCopies:            50,
			MaxFileSizeBytes:     26214400,
			AcceptedContentTypes: []string{"application/pdf"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["price_color"] != "5" || res["max_copies"] != float64(50) {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("uninitialized settings map to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, usecase.ErrSettingsNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSettingsHandler_Put(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid decimal rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		body := `{"price_monochrome":"one","price_color":"5","currency":"INR","max_copies":50,"max_file_size_bytes":1024,"accepted_content_types":["application/pdf"]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(entities.Settings{}, entities.ErrNegativePrice)

		body := `{"price_monochrome":"-1","price_color":"5","currency":"INR","max_copies":50,"max_file_size_bytes":1024,"accepted_content_types":["application/pdf"]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("replaces the configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, s entities.Settings) (entities.Settings, error) {
				if !s.PriceColor.Equal(decimal.NewFromFloat(7.5)) || s.Currency != "INR" {
					t.Fatalf("unexpected settings: %+v", s)
				}
				return s, nil
			})

		body := `{"price_monochrome":"1.5","price_color":"7.5","currency":"inr","max_copies":50,"max_file_size_bytes":1024,"accepted_content_types":["application/pdf"]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
