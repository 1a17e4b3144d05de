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

func TestAppointmentHandler_CreateAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created as AGENDADO", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewAppointmentHandler(st)

		m.vehicles.EXPECT().GetByPlate(gomock.Any(), "MNO-7890").
			Return(entities.Vehicle{ID: "veh-1", Plate: "MNO-7890"}, nil)
		m.appointments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.vehicleServices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		r := gin.New()
		r.POST("/v1/appointments", h.CreateAppointment)

		body := `{
			"client_name": "Roberto Campos",
			"vehicle": {"model": "Hyundai HB20", "year": "2020", "plate": "MNO-7890"},
			"service_type": "Troca de óleo",
			"date": "2026-09-15",
			"time": "09:30"
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got response.AppointmentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Status != string(entities.AppointmentStatusAgendado) {
			t.Fatalf("expected AGENDADO, got %s", got.Status)
		}
	})

	t.Run("invalid slot", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewAppointmentHandler(st)
		m.notifier.EXPECT().Failure(gomock.Any())

		r := gin.New()
		r.POST("/v1/appointments", h.CreateAppointment)

		body := `{
			"client_name": "Roberto Campos",
			"vehicle": {"plate": "MNO-7890"},
			"service_type": "Troca de óleo",
			"date": "15/09/2026",
			"time": "09:30"
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_UpdateAppointmentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status rejected", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewAppointmentHandler(st)
		m.notifier.EXPECT().Failure(gomock.Any())

		r := gin.New()
		r.PATCH("/v1/appointments/:id/status", h.UpdateAppointmentStatus)

		req := httptest.NewRequest(http.MethodPatch,
			"/v1/appointments/8f14e45f-ceea-4672-8b13-2f8d0c0bd3b1/status",
			bytes.NewBufferString(`{"status": "PERDIDO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		st, m := newTestStore(t)
		h := NewAppointmentHandler(st)
		m.notifier.EXPECT().Failure(gomock.Any())

		r := gin.New()
		r.PATCH("/v1/appointments/:id/status", h.UpdateAppointmentStatus)

		req := httptest.NewRequest(http.MethodPatch,
			"/v1/appointments/8f14e45f-ceea-4672-8b13-2f8d0c0bd3b1/status",
			bytes.NewBufferString(`{"status": "FINALIZADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
