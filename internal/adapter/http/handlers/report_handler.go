package handlers

import (
	"net/http"
	"strconv"

	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultChartDays = 7

// ReportHandler serves the dashboard aggregates. Everything is computed
// from the store snapshot, so these endpoints never touch the database.

type ReportHandler struct {
	store *usecase.Store
}

func NewReportHandler(store *usecase.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSummary(h.store.Summary()))
}

// GetChart returns the revenue-versus-expenses series. The window defaults
// to 7 days; a malformed days parameter falls back to the default rather
// than failing the dashboard.
func (h *ReportHandler) GetChart(c *gin.Context) {
	days := defaultChartDays
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	c.JSON(http.StatusOK, response.FromChart(h.store.RevenueChart(days)))
}
