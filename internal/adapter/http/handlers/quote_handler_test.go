package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amsi_crm/internal/adapter/http/handlers/mocks"
	"amsi_crm/internal/adapter/persistence/repository"
	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/domain/workflow"
	"amsi_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), "c-1", "Install", gomock.Any(), "sales").Return(entities.Quote{}, usecase.ErrEmptyQuoteItems)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_id":"c-1","title":"Install","items":[],"actor":"sales"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), "c-1", "Install", gomock.Any(), "sales").Return(entities.Quote{
			ID:          "q-1",
			CustomerID:  "c-1",
			Title:       "Install",
			Status:      entities.QuoteStatusDraft,
			TotalAmount: decimal.NewFromInt(1296),
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil)

		payload := `{"customer_id":"c-1","title":"Install","actor":"sales","items":[{"description":"Alarm panel","quantity":1,"unit_price":1000},{"description":"Door sensor","quantity":4,"unit_price":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["total_amount"] != 1296.0 {
			t.Fatalf("unexpected total: %v", body["total_amount"])
		}
	})
}

func TestQuoteHandler_ConvertQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockIQuoteUseCase) *gin.Engine {
		h := NewQuoteHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)
		return r
	}

	t.Run("success returns 201 with the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().ConvertToInvoice(gomock.Any(), "q-1", "system").Return(entities.Invoice{
			ID:     "i-1",
			Status: entities.InvoiceStatusDraft,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "i-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already converted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().ConvertToInvoice(gomock.Any(), "q-1", "system").Return(entities.Invoice{}, usecase.ErrQuoteAlreadyConverted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not convertible maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().ConvertToInvoice(gomock.Any(), "q-1", "system").Return(entities.Invoice{}, usecase.ErrQuoteNotConvertible)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := gin.New()
		r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAccepted, "customer", "").Return(entities.Quote{}, workflow.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"accepted","actor":"customer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapCommonError(t *testing.T) {
	if got := mapCommonError(workflow.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 for invalid transition")
	}
	if got := mapCommonError(repository.ErrDuplicateID); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate id")
	}
	if got := mapCommonError(repository.ErrNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404 for not found")
	}
	if got := mapCommonError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback")
	}
}
