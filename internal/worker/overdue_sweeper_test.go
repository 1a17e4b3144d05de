package worker

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"
	"oficina_prime/internal/usecase/interfaces/mocks"
)

func TestOverdueSweeper_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)

	appointments := mocks.NewMockIAppointmentRepository(ctrl)
	vehicles := mocks.NewMockIVehicleRepository(ctrl)
	vehicleServices := mocks.NewMockIVehicleServiceRepository(ctrl)
	notifier := mocks.NewMockINotifier(ctrl)

	repos := usecase.Repositories{
		ServiceOrders:   mocks.NewMockIServiceOrderRepository(ctrl),
		Parts:           mocks.NewMockIPartRepository(ctrl),
		Appointments:    appointments,
		Inventory:       mocks.NewMockIInventoryRepository(ctrl),
		Expenses:        mocks.NewMockIExpenseRepository(ctrl),
		Vehicles:        vehicles,
		VehicleServices: vehicleServices,
	}
	st := usecase.NewStore(repos, notifier, nil)

	vehicles.EXPECT().GetByPlate(gomock.Any(), "ABC-1234").
		Return(entities.Vehicle{ID: "veh-1", Plate: "ABC-1234"}, nil)
	appointments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	vehicleServices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Success(gomock.Any())

	past, err := st.AddAppointment(context.Background(), usecase.AppointmentDraft{
		ClientName:  "Carlos Pereira",
		Vehicle:     entities.VehicleRef{Model: "Fiat Uno", Year: "2015", Plate: "ABC-1234"},
		ServiceType: "Revisão",
		Date:        "2000-01-01",
		Time:        "08:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	appointments.EXPECT().UpdateStatus(gomock.Any(), past.ID, entities.AppointmentStatusAtrasado).Return(nil)

	sweeper := NewOverdueSweeper(st)
	sweeper.Sweep(context.Background())

	got := st.Appointments()
	if len(got) != 1 || got[0].Status != entities.AppointmentStatusAtrasado {
		t.Fatalf("expected appointment flagged as ATRASADO, got %+v", got)
	}

	// Second pass finds nothing AGENDADO; an unexpected repository call
	// would fail the controller.
	sweeper.Sweep(context.Background())
}
