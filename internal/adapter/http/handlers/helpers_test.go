package handlers

import (
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_prime/internal/usecase"
	"oficina_prime/internal/usecase/interfaces/mocks"
)

// storeMocks bundles the repository and collaborator mocks behind a Store
// wired for handler tests.
type storeMocks struct {
	serviceOrders   *mocks.MockIServiceOrderRepository
	parts           *mocks.MockIPartRepository
	appointments    *mocks.MockIAppointmentRepository
	inventory       *mocks.MockIInventoryRepository
	expenses        *mocks.MockIExpenseRepository
	vehicles        *mocks.MockIVehicleRepository
	vehicleServices *mocks.MockIVehicleServiceRepository
	notifier        *mocks.MockINotifier
}

func newTestStore(t *testing.T) (*usecase.Store, *storeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &storeMocks{
		serviceOrders:   mocks.NewMockIServiceOrderRepository(ctrl),
		parts:           mocks.NewMockIPartRepository(ctrl),
		appointments:    mocks.NewMockIAppointmentRepository(ctrl),
		inventory:       mocks.NewMockIInventoryRepository(ctrl),
		expenses:        mocks.NewMockIExpenseRepository(ctrl),
		vehicles:        mocks.NewMockIVehicleRepository(ctrl),
		vehicleServices: mocks.NewMockIVehicleServiceRepository(ctrl),
		notifier:        mocks.NewMockINotifier(ctrl),
	}

	st := usecase.NewStore(usecase.Repositories{
		ServiceOrders:   m.serviceOrders,
		Parts:           m.parts,
		Appointments:    m.appointments,
		Inventory:       m.inventory,
		Expenses:        m.expenses,
		Vehicles:        m.vehicles,
		VehicleServices: m.vehicleServices,
	}, m.notifier, nil)

	return st, m
}
