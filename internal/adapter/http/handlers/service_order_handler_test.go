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
	"oficina_prime/internal/domain/entities"
)

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		st, _ := newTestStore(t)
		h := NewServiceOrderHandler(st)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with recomputed total", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewServiceOrderHandler(st)

		m.vehicles.EXPECT().GetByPlate(gomock.Any(), "ABC-1234").
			Return(entities.Vehicle{ID: "veh-1", Plate: "ABC-1234"}, nil)
		m.serviceOrders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.parts.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		body := `{
			"client_name": "João Silva",
			"vehicle": {"model": "Fiat Uno", "year": "2015", "plate": "ABC-1234"},
			"service_type": "Revisão completa",
			"labor_cost": 120,
			"total": 9999,
			"parts": [{"name": "Filtro de óleo", "price": 25, "quantity": 1}, {"name": "Vela", "price": 25, "quantity": 4}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got response.ServiceOrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Total != 245 {
			t.Fatalf("expected recomputed total 245, got %v", got.Total)
		}
		if got.Status != string(entities.ServiceOrderStatusRascunho) {
			t.Fatalf("expected RASCUNHO, got %s", got.Status)
		}
	})

	t.Run("missing client name", func(t *testing.T) {
		st, _ := newTestStore(t)
		h := NewServiceOrderHandler(st)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		body := `{"vehicle": {"plate": "ABC-1234"}, "service_type": "Revisão"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_CompleteServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown id", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewServiceOrderHandler(st)
		m.notifier.EXPECT().Failure(gomock.Any())

		r := gin.New()
		r.POST("/v1/service-orders/:id/complete", h.CompleteServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/8f14e45f-ceea-4672-8b13-2f8d0c0bd3b1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewServiceOrderHandler(st)
		m.notifier.EXPECT().Failure(gomock.Any())

		r := gin.New()
		r.POST("/v1/service-orders/:id/complete", h.CompleteServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/not-a-uuid/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ListServiceOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st, _ := newTestStore(t)
	h := NewServiceOrderHandler(st)

	r := gin.New()
	r.GET("/v1/service-orders", h.ListServiceOrders)

	req := httptest.NewRequest(http.MethodGet, "/v1/service-orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %s", w.Body.String())
	}
}
