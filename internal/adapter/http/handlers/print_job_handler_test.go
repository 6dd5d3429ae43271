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
	"eprinter/internal/printcalc"
	"eprinter/internal/usecase"
)

func jobRouter(h *PrintJobHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/jobs", h.Submit)
	r.GET("/v1/jobs", h.ListByStatus)
	r.GET("/v1/jobs/:id", h.GetByID)
	r.PATCH("/v1/jobs/:id/cancel", h.Cancel)
	r.PATCH("/v1/jobs/:id/advance", h.Advance)
	r.POST("/v1/jobs/:id/collect", h.Collect)
	return r
}

func TestPrintJobHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid client estimate decimal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		body := `{"document_id":"doc-1","mode":"color","client_estimate":{"total_cost":"not-a-number"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards command and returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		clientCost := decimal.NewFromFloat(40)
		job := entities.PrintJob{
			ID:         "job-1",
			PickupCode: "AB12CD34",
			TotalCost:  decimal.NewFromFloat(40),
			Currency:   "INR",
			Mode:       printcalc.ModeColor,
			Status:     entities.PrintJobStatusPendingPayment,
		}
		uc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.SubmitPrintJobCommand) (entities.PrintJob, error) {
				if cmd.DocumentID != "doc-1" || cmd.Expression != "1-3,5" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.Options.Copies != 2 || cmd.Options.Mode != printcalc.ModeColor {
					t.Fatalf("unexpected options: %+v", cmd.Options)
				}
				if cmd.ClientTotalCost == nil || !cmd.ClientTotalCost.Equal(clientCost) {
					t.Fatalf("unexpected client cost: %+v", cmd.ClientTotalCost)
				}
				return job, nil
			})

		body := `{"document_id":"doc-1","expression":"1-3,5","total_pages":10,"copies":2,"mode":"color","client_estimate":{"total_cost":"40"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["pickup_code"] != "AB12CD34" || res["total_cost"] != "40.00" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("out of bounds page maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(entities.PrintJob{}, &printcalc.OutOfBoundsError{Page: 11, TotalPages: 10})

		body := `{"document_id":"doc-1","expression":"11","mode":"color"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var res map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["code"] != "PAGE_OUT_OF_BOUNDS" {
			t.Fatalf("unexpected error code: %v", res)
		}
	})

	t.Run("service closed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(entities.PrintJob{}, usecase.ErrServiceClosed)

		body := `{"document_id":"doc-1","expression":"all","mode":"color"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPrintJobHandler_Queue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list requires status query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			ListByStatus(gomock.Any(), entities.PrintJobStatusQueued).
			Return([]entities.PrintJob{{ID: "job-1"}, {ID: "job-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs?status=queued", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(res))
		}
	})

	t.Run("cancel conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			Cancel(gomock.Any(), "job-1").
			Return(entities.PrintJob{}, usecase.ErrNotCancellable)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("advance moves the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			Advance(gomock.Any(), "job-1").
			Return(entities.PrintJob{ID: "job-1", Status: entities.PrintJobStatusPrinting}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("collect with wrong code is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			Collect(gomock.Any(), "job-1", "WRONG123").
			Return(entities.PrintJob{}, usecase.ErrWrongPickupCode)

		body := `{"pickup_code":"WRONG123"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/collect", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("collect succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPrintJobUseCase(ctrl)
		r := jobRouter(NewPrintJobHandler(uc))

		uc.EXPECT().
			Collect(gomock.Any(), "job-1", "AB12CD34").
			Return(entities.PrintJob{ID: "job-1", Status: entities.PrintJobStatusCollected}, nil)

		body := `{"pickup_code":"AB12CD34"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/collect", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["status"] != "collected" {
			t.Fatalf("unexpected status: %v", res)
		}
	})
}
