package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/domain/reports"
	"oficina_prime/internal/seed"
	"oficina_prime/internal/usecase/interfaces"
)

var (
	ErrInvalidID               = errors.New("invalid id")
	ErrServiceOrderNotFound    = errors.New("service order not found")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInventoryItemNotFound   = errors.New("inventory item not found")
	ErrExpenseNotFound         = errors.New("expense not found")
	ErrMissingClientName       = errors.New("missing client name")
	ErrMissingPlate            = errors.New("missing vehicle plate")
	ErrMissingServiceType      = errors.New("missing service type")
	ErrMissingDescription      = errors.New("missing description")
	ErrMissingName             = errors.New("missing name")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidStock            = errors.New("invalid stock")
	ErrInvalidAppointmentSlot  = errors.New("invalid appointment date or time")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// Repositories bundles the persistence collaborators the store writes through.
type Repositories struct {
	ServiceOrders   interfaces.IServiceOrderRepository
	Parts           interfaces.IPartRepository
	Appointments    interfaces.IAppointmentRepository
	Inventory       interfaces.IInventoryRepository
	Expenses        interfaces.IExpenseRepository
	Vehicles        interfaces.IVehicleRepository
	VehicleServices interfaces.IVehicleServiceRepository
}

// Store is the single source of truth for the shop's collections.
//
// Every mutation follows the same discipline: validate, write through the
// repository, and only on success merge the result into the in-memory
// snapshot and notify the user. A failed write leaves the snapshot exactly
// as it was; there is no rollback because nothing was applied. Reads may
// observe a stale snapshot while a write is in flight; the last write wins.
type Store struct {
	mu sync.RWMutex

	orders          []entities.ServiceOrder
	appointments    []entities.Appointment
	inventory       []entities.InventoryItem
	expenses        []entities.Expense
	vehicles        []entities.Vehicle
	vehicleServices []entities.VehicleService

	repos    Repositories
	notifier interfaces.INotifier
	gateway  interfaces.IPaymentGateway

	now   func() time.Time
	newID func() string
}

func NewStore(repos Repositories, notifier interfaces.INotifier, gateway interfaces.IPaymentGateway) *Store {
	return &Store{
		repos:    repos,
		notifier: notifier,
		gateway:  gateway,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Load performs the best-effort initial fetch of every collection. A
// collection whose fetch fails falls back to the built-in sample dataset
// (or stays empty for the derived collections) instead of leaving the UI
// blank. Load never fails; it only logs and notifies.
func (s *Store) Load(ctx context.Context) {
	now := s.now()

	orders, err := s.repos.ServiceOrders.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[store] service orders fetch failed, using sample data")
		orders = seed.ServiceOrders(now)
	} else if parts, perr := s.repos.Parts.List(ctx); perr != nil {
		log.Warn().Err(perr).Msg("[store] parts fetch failed, orders loaded without parts")
	} else {
		attachParts(orders, parts)
	}

	appointments, err := s.repos.Appointments.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[store] appointments fetch failed, using sample data")
		appointments = seed.Appointments(now)
	}

	inventory, err := s.repos.Inventory.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[store] inventory fetch failed, using sample data")
		inventory = seed.Inventory()
	}

	expenses, err := s.repos.Expenses.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[store] expenses fetch failed, using sample data")
		expenses = seed.Expenses(now)
	}

	vehicles, err := s.repos.Vehicles.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[store] vehicles fetch failed, starting empty")
		vehicles = nil
	}

	vehicleServices, err := s.repos.VehicleServices.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[store] vehicle history fetch failed, starting empty")
		vehicleServices = nil
	}

	s.mu.Lock()
	s.orders = orders
	s.appointments = appointments
	s.inventory = inventory
	s.expenses = expenses
	s.vehicles = vehicles
	s.vehicleServices = vehicleServices
	s.mu.Unlock()

	log.Info().
		Int("service_orders", len(orders)).
		Int("appointments", len(appointments)).
		Int("inventory", len(inventory)).
		Int("expenses", len(expenses)).
		Int("vehicles", len(vehicles)).
		Int("vehicle_services", len(vehicleServices)).
		Msg("[store] snapshot loaded")
}

func attachParts(orders []entities.ServiceOrder, parts []entities.Part) {
	byOrder := make(map[string][]entities.Part, len(orders))
	for _, p := range parts {
		byOrder[p.ServiceOrderID] = append(byOrder[p.ServiceOrderID], p)
	}
	for i := range orders {
		orders[i].Parts = byOrder[orders[i].ID]
	}
}

// Snapshot accessors. Each returns a copy of the slice so callers can
// iterate without holding the store's lock.

func (s *Store) ServiceOrders() []entities.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.ServiceOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Appointments() []entities.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) Inventory() []entities.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *Store) Expenses() []entities.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *Store) Vehicles() []entities.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

func (s *Store) VehicleServices() []entities.VehicleService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.VehicleService, len(s.vehicleServices))
	copy(out, s.vehicleServices)
	return out
}

// FinancialSummary is the dashboard rollup, recomputed from the current
// snapshot on every call.
type FinancialSummary struct {
	DailyRevenue    float64 `json:"daily_revenue"`
	WeeklyRevenue   float64 `json:"weekly_revenue"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	DailyExpenses   float64 `json:"daily_expenses"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
}

func (s *Store) Summary() FinancialSummary {
	now := s.now()
	orders := s.ServiceOrders()
	expenses := s.Expenses()
	return FinancialSummary{
		DailyRevenue:    reports.DailyRevenue(orders, now),
		WeeklyRevenue:   reports.WeeklyRevenue(orders, now),
		MonthlyRevenue:  reports.MonthlyRevenue(orders, now),
		DailyExpenses:   reports.DailyExpenses(expenses, now),
		MonthlyExpenses: reports.MonthlyExpenses(expenses, now),
	}
}

func (s *Store) RevenueChart(days int) []reports.ChartPoint {
	return reports.ChartSeries(s.ServiceOrders(), s.Expenses(), days, s.now())
}

func (s *Store) notifySuccess(message string) {
	if s.notifier != nil {
		s.notifier.Success(message)
	}
}

func (s *Store) notifyFailure(message string) {
	if s.notifier != nil {
		s.notifier.Failure(message)
	}
}

func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidID
	}
	return nil
}
