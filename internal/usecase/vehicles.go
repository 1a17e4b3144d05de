package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"oficina_prime/internal/domain/entities"
)

// VehicleServiceDraft carries the fields of a manually recorded history
// entry (the vehicle history form).
type VehicleServiceDraft struct {
	Plate        string
	ServiceType  string
	Description  string
	Notes        string
	ServiceDate  time.Time
	Price        float64
	MechanicName string
	ClientName   string
}

func (d VehicleServiceDraft) validate() error {
	if strings.TrimSpace(d.Plate) == "" {
		return ErrMissingPlate
	}
	if strings.TrimSpace(d.ServiceType) == "" {
		return ErrMissingServiceType
	}
	if strings.TrimSpace(d.ClientName) == "" {
		return ErrMissingClientName
	}
	return nil
}

// ensureVehicle is the explicit get-or-create step that runs before any
// order or appointment referencing a plate is persisted. The snapshot is
// checked first; the repository lookup covers plates another session may
// have registered. Failures are logged and swallowed: the primary record
// always proceeds without its vehicle row.
func (s *Store) ensureVehicle(ctx context.Context, ref entities.VehicleRef) {
	plate := strings.TrimSpace(ref.Plate)
	if plate == "" {
		return
	}

	s.mu.RLock()
	for _, v := range s.vehicles {
		if v.Plate == plate {
			s.mu.RUnlock()
			return
		}
	}
	s.mu.RUnlock()

	if existing, err := s.repos.Vehicles.GetByPlate(ctx, plate); err != nil {
		log.Warn().Err(err).Str("plate", plate).Msg("[store] vehicle lookup failed")
		return
	} else if existing.ID != "" {
		s.mu.Lock()
		s.vehicles = append(s.vehicles, existing)
		s.mu.Unlock()
		return
	}

	vehicle := entities.Vehicle{
		ID:        s.newID(),
		Plate:     plate,
		Model:     strings.TrimSpace(ref.Model),
		Year:      strings.TrimSpace(ref.Year),
		CreatedAt: s.now(),
	}
	if err := s.repos.Vehicles.Create(ctx, vehicle); err != nil {
		log.Warn().Err(err).Str("plate", plate).Msg("[store] vehicle create failed")
		return
	}

	s.mu.Lock()
	s.vehicles = append(s.vehicles, vehicle)
	s.mu.Unlock()
}

// AddVehicleService records a manual history entry for a vehicle.
func (s *Store) AddVehicleService(ctx context.Context, draft VehicleServiceDraft) (entities.VehicleService, error) {
	if err := draft.validate(); err != nil {
		s.notifyFailure("Dados do histórico inválidos: " + err.Error())
		return entities.VehicleService{}, err
	}

	serviceDate := draft.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = s.now()
	}

	entry := entities.VehicleService{
		ID:           s.newID(),
		VehicleID:    strings.TrimSpace(draft.Plate),
		ServiceType:  strings.TrimSpace(draft.ServiceType),
		Description:  strings.TrimSpace(draft.Description),
		Notes:        strings.TrimSpace(draft.Notes),
		ServiceDate:  serviceDate,
		Price:        draft.Price,
		MechanicName: strings.TrimSpace(draft.MechanicName),
		ClientName:   strings.TrimSpace(draft.ClientName),
		CreatedAt:    s.now(),
	}

	if err := s.repos.VehicleServices.Create(ctx, entry); err != nil {
		s.notifyFailure("Erro ao registrar histórico: " + err.Error())
		return entities.VehicleService{}, err
	}

	s.mu.Lock()
	s.vehicleServices = append(s.vehicleServices, entry)
	s.mu.Unlock()

	s.notifySuccess("Histórico registrado com sucesso!")
	return entry, nil
}

// GetVehicleServices filters the history snapshot by plate.
func (s *Store) GetVehicleServices(plate string) []entities.VehicleService {
	plate = strings.TrimSpace(plate)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.VehicleService
	for _, vs := range s.vehicleServices {
		if vs.VehicleID == plate {
			out = append(out, vs)
		}
	}
	return out
}
