package request

import (
	"errors"
	"time"

	"oficina_prime/internal/usecase"
)

var ErrInvalidServiceDate = errors.New("invalid service date")

const serviceDateLayout = "2006-01-02"

// VehicleServiceRequest is the manual history form: a service performed on
// a vehicle outside the order flow. The plate comes from the URL.
type VehicleServiceRequest struct {
	ServiceType  string  `json:"service_type" binding:"required"`
	Description  string  `json:"description"`
	Notes        string  `json:"notes"`
	ServiceDate  string  `json:"service_date"`
	Price        float64 `json:"price"`
	MechanicName string  `json:"mechanic_name"`
	ClientName   string  `json:"client_name" binding:"required"`
}

// ToDraft parses the service date; an absent date defaults to today.
func (r VehicleServiceRequest) ToDraft(plate string, now time.Time) (usecase.VehicleServiceDraft, error) {
	date := now
	if r.ServiceDate != "" {
		parsed, err := time.Parse(serviceDateLayout, r.ServiceDate)
		if err != nil {
			return usecase.VehicleServiceDraft{}, ErrInvalidServiceDate
		}
		date = parsed
	}
	return usecase.VehicleServiceDraft{
		Plate:        plate,
		ServiceType:  r.ServiceType,
		Description:  r.Description,
		Notes:        r.Notes,
		ServiceDate:  date,
		Price:        r.Price,
		MechanicName: r.MechanicName,
		ClientName:   r.ClientName,
	}, nil
}
