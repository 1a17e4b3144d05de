package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	response "oficina_prime/internal/adapter/http/dto/response"
)

func TestReportHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st, _ := newTestStore(t)
	h := NewReportHandler(st)

	r := gin.New()
	r.GET("/v1/reports/summary", h.GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got response.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.DailyRevenue != 0 || got.MonthlyExpenses != 0 {
		t.Fatalf("expected zeroed summary for empty store, got %+v", got)
	}
}

func TestReportHandler_GetChart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"default window", "", 7},
		{"explicit window", "?days=30", 30},
		{"malformed falls back", "?days=soon", 7},
		{"non-positive falls back", "?days=0", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := newTestStore(t)
			h := NewReportHandler(st)

			r := gin.New()
			r.GET("/v1/reports/chart", h.GetChart)

			req := httptest.NewRequest(http.MethodGet, "/v1/reports/chart"+tt.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var got []response.ChartPointResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d points, got %d", tt.want, len(got))
			}
		})
	}
}
