package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/domain/reports"
)

func TestInventoryHandler_CreateInventoryItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created with derived status and margin", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewInventoryHandler(st)

		m.inventory.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		r := gin.New()
		r.POST("/v1/inventory", h.CreateInventoryItem)

		body := `{"name": "Filtro de ar", "purchase_price": 15, "selling_price": 21, "stock": 20, "min_stock": 5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inventory", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got response.InventoryItemResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Status != string(reports.StockStatusIn) {
			t.Fatalf("expected IN_STOCK, got %s", got.Status)
		}
		if got.ProfitMargin != 40.0 {
			t.Fatalf("expected margin 40.0, got %v", got.ProfitMargin)
		}
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewInventoryHandler(st)
		m.notifier.EXPECT().Failure(gomock.Any())

		r := gin.New()
		r.POST("/v1/inventory", h.CreateInventoryItem)

		body := `{"name": "Filtro de ar", "stock": -1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inventory", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_DeleteInventoryItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st, m := newTestStore(t)
	h := NewInventoryHandler(st)
	m.notifier.EXPECT().Failure(gomock.Any())

	r := gin.New()
	r.DELETE("/v1/inventory/:id", h.DeleteInventoryItem)

	req := httptest.NewRequest(http.MethodDelete, "/v1/inventory/8f14e45f-ceea-4672-8b13-2f8d0c0bd3b1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
