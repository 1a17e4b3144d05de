package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"oficina_prime/internal/domain/entities"
)

const (
	appointmentDateLayout = "2006-01-02"
	appointmentTimeLayout = "15:04"
)

// AppointmentDraft carries the fields a new appointment is created from.
// New appointments always start as AGENDADO.
type AppointmentDraft struct {
	ClientName  string
	Vehicle     entities.VehicleRef
	ServiceType string
	Date        string
	Time        string
	Notes       string
}

// AppointmentPatch is a partial update; nil fields are left untouched.
type AppointmentPatch struct {
	ClientName  *string
	ServiceType *string
	Date        *string
	Time        *string
	Notes       *string
}

func (d AppointmentDraft) validate() error {
	if strings.TrimSpace(d.ClientName) == "" {
		return ErrMissingClientName
	}
	if strings.TrimSpace(d.Vehicle.Plate) == "" {
		return ErrMissingPlate
	}
	if strings.TrimSpace(d.ServiceType) == "" {
		return ErrMissingServiceType
	}
	if _, err := time.Parse(appointmentDateLayout, d.Date); err != nil {
		return ErrInvalidAppointmentSlot
	}
	if _, err := time.Parse(appointmentTimeLayout, d.Time); err != nil {
		return ErrInvalidAppointmentSlot
	}
	return nil
}

// AddAppointment persists a new AGENDADO appointment, ensuring the vehicle
// exists first and appending an "Agendamento" row to the vehicle history as
// a secondary effect that never fails the appointment itself.
func (s *Store) AddAppointment(ctx context.Context, draft AppointmentDraft) (entities.Appointment, error) {
	if err := draft.validate(); err != nil {
		s.notifyFailure("Dados do agendamento inválidos: " + err.Error())
		return entities.Appointment{}, err
	}

	s.ensureVehicle(ctx, draft.Vehicle)

	appointment := entities.Appointment{
		ID:          s.newID(),
		ClientName:  strings.TrimSpace(draft.ClientName),
		Vehicle:     draft.Vehicle,
		ServiceType: strings.TrimSpace(draft.ServiceType),
		Date:        draft.Date,
		Time:        draft.Time,
		Notes:       strings.TrimSpace(draft.Notes),
		Status:      entities.AppointmentStatusAgendado,
		CreatedAt:   s.now(),
	}

	if err := s.repos.Appointments.Create(ctx, appointment); err != nil {
		s.notifyFailure("Erro ao criar agendamento: " + err.Error())
		return entities.Appointment{}, err
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, appointment)
	s.mu.Unlock()

	s.notifySuccess("Agendamento criado com sucesso!")
	s.appendAppointmentHistory(ctx, appointment)

	return appointment, nil
}

func (s *Store) appendAppointmentHistory(ctx context.Context, appointment entities.Appointment) {
	entry := entities.VehicleService{
		ID:          s.newID(),
		VehicleID:   appointment.Vehicle.Plate,
		ServiceType: "Agendamento: " + appointment.ServiceType,
		Notes:       appointment.Notes,
		ServiceDate: appointment.CreatedAt,
		ClientName:  appointment.ClientName,
		CreatedAt:   appointment.CreatedAt,
	}

	if err := s.repos.VehicleServices.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("appointment_id", appointment.ID).
			Msg("[store] vehicle history append failed for appointment")
		s.notifyFailure("Agendamento criado, mas o histórico do veículo não foi gravado: " + err.Error())
		return
	}

	s.mu.Lock()
	s.vehicleServices = append(s.vehicleServices, entry)
	s.mu.Unlock()
}

// UpdateAppointment applies a partial update and replaces the record in the
// snapshot on success. Status is not touched here; use
// UpdateAppointmentStatus for transitions.
func (s *Store) UpdateAppointment(ctx context.Context, id string, patch AppointmentPatch) (entities.Appointment, error) {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de agendamento inválido")
		return entities.Appointment{}, err
	}

	appointment, ok := s.findAppointment(id)
	if !ok {
		s.notifyFailure("Agendamento não encontrado")
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	if patch.ClientName != nil {
		appointment.ClientName = strings.TrimSpace(*patch.ClientName)
	}
	if patch.ServiceType != nil {
		appointment.ServiceType = strings.TrimSpace(*patch.ServiceType)
	}
	if patch.Date != nil {
		if _, err := time.Parse(appointmentDateLayout, *patch.Date); err != nil {
			s.notifyFailure("Data do agendamento inválida")
			return entities.Appointment{}, ErrInvalidAppointmentSlot
		}
		appointment.Date = *patch.Date
	}
	if patch.Time != nil {
		if _, err := time.Parse(appointmentTimeLayout, *patch.Time); err != nil {
			s.notifyFailure("Horário do agendamento inválido")
			return entities.Appointment{}, ErrInvalidAppointmentSlot
		}
		appointment.Time = *patch.Time
	}
	if patch.Notes != nil {
		appointment.Notes = strings.TrimSpace(*patch.Notes)
	}

	if err := s.repos.Appointments.Update(ctx, appointment); err != nil {
		s.notifyFailure("Erro ao atualizar agendamento: " + err.Error())
		return entities.Appointment{}, err
	}

	s.replaceAppointment(appointment)
	s.notifySuccess("Agendamento atualizado!")
	return appointment, nil
}

// UpdateAppointmentStatus transitions the status field and nothing else.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de agendamento inválido")
		return entities.Appointment{}, err
	}
	if !entities.ValidAppointmentStatus(status) {
		s.notifyFailure("Status de agendamento inválido")
		return entities.Appointment{}, ErrInvalidStatus
	}

	appointment, ok := s.findAppointment(id)
	if !ok {
		s.notifyFailure("Agendamento não encontrado")
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	if err := s.repos.Appointments.UpdateStatus(ctx, id, status); err != nil {
		s.notifyFailure("Erro ao atualizar status do agendamento: " + err.Error())
		return entities.Appointment{}, err
	}

	appointment.Status = status
	s.replaceAppointment(appointment)
	s.notifySuccess("Agendamento atualizado!")
	return appointment, nil
}

// DeleteAppointment removes the appointment from the store and snapshot.
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.notifyFailure("Identificador de agendamento inválido")
		return err
	}
	if _, ok := s.findAppointment(id); !ok {
		s.notifyFailure("Agendamento não encontrado")
		return ErrAppointmentNotFound
	}

	if err := s.repos.Appointments.Delete(ctx, id); err != nil {
		s.notifyFailure("Erro ao excluir agendamento: " + err.Error())
		return err
	}

	s.mu.Lock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifySuccess("Agendamento excluído!")
	return nil
}

// MarkOverdueAppointments flags every AGENDADO appointment whose scheduled
// slot already passed as ATRASADO. The overdue sweeper calls this on a
// schedule; the count of transitions is returned for logging. Slots that
// fail to parse are skipped.
func (s *Store) MarkOverdueAppointments(ctx context.Context) int {
	now := s.now()
	marked := 0
	for _, a := range s.Appointments() {
		if a.Status != entities.AppointmentStatusAgendado {
			continue
		}
		slot, err := time.ParseInLocation(appointmentDateLayout+" "+appointmentTimeLayout, a.Date+" "+a.Time, now.Location())
		if err != nil {
			log.Warn().Str("appointment_id", a.ID).Str("date", a.Date).Str("time", a.Time).
				Msg("[store] unparseable appointment slot, skipping overdue check")
			continue
		}
		if slot.After(now) {
			continue
		}
		// Background transition: write through the repository directly so
		// the sweep doesn't emit one toast per appointment.
		if err := s.repos.Appointments.UpdateStatus(ctx, a.ID, entities.AppointmentStatusAtrasado); err != nil {
			log.Warn().Err(err).Str("appointment_id", a.ID).Msg("[store] overdue transition failed")
			continue
		}
		a.Status = entities.AppointmentStatusAtrasado
		s.replaceAppointment(a)
		marked++
	}
	return marked
}

func (s *Store) findAppointment(id string) (entities.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return entities.Appointment{}, false
}

func (s *Store) replaceAppointment(appointment entities.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == appointment.ID {
			s.appointments[i] = appointment
			return
		}
	}
}
