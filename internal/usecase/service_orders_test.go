package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase/interfaces/mocks"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

type storeMocks struct {
	orders          *mocks.MockIServiceOrderRepository
	parts           *mocks.MockIPartRepository
	appointments    *mocks.MockIAppointmentRepository
	inventory       *mocks.MockIInventoryRepository
	expenses        *mocks.MockIExpenseRepository
	vehicles        *mocks.MockIVehicleRepository
	vehicleServices *mocks.MockIVehicleServiceRepository
	notifier        *mocks.MockINotifier
}

func newTestStore(t *testing.T) (*Store, storeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := storeMocks{
		orders:          mocks.NewMockIServiceOrderRepository(ctrl),
		parts:           mocks.NewMockIPartRepository(ctrl),
		appointments:    mocks.NewMockIAppointmentRepository(ctrl),
		inventory:       mocks.NewMockIInventoryRepository(ctrl),
		expenses:        mocks.NewMockIExpenseRepository(ctrl),
		vehicles:        mocks.NewMockIVehicleRepository(ctrl),
		vehicleServices: mocks.NewMockIVehicleServiceRepository(ctrl),
		notifier:        mocks.NewMockINotifier(ctrl),
	}
	st := NewStore(Repositories{
		ServiceOrders:   m.orders,
		Parts:           m.parts,
		Appointments:    m.appointments,
		Inventory:       m.inventory,
		Expenses:        m.expenses,
		Vehicles:        m.vehicles,
		VehicleServices: m.vehicleServices,
	}, m.notifier, nil)
	st.now = func() time.Time { return testNow }
	return st, m
}

// knownVehicle preloads the snapshot so ensureVehicle short-circuits.
func knownVehicle(st *Store, plate string) {
	st.vehicles = append(st.vehicles, entities.Vehicle{ID: "veh-1", Plate: plate})
}

func TestStore_AddServiceOrder(t *testing.T) {
	t.Run("missing client name", func(t *testing.T) {
		st, m := newTestStore(t)
		m.notifier.EXPECT().Failure(gomock.Any())

		_, err := st.AddServiceOrder(context.Background(), ServiceOrderDraft{
			Vehicle:     entities.VehicleRef{Plate: "ABC-1234"},
			ServiceType: "Troca de óleo",
		})
		if !errors.Is(err, ErrMissingClientName) {
			t.Fatalf("expected ErrMissingClientName, got %v", err)
		}
		if len(st.ServiceOrders()) != 0 {
			t.Fatalf("snapshot must stay untouched on validation failure")
		}
	})

	t.Run("store failure leaves snapshot untouched", func(t *testing.T) {
		st, m := newTestStore(t)
		knownVehicle(st, "ABC-1234")
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))
		m.notifier.EXPECT().Failure(gomock.Any())

		_, err := st.AddServiceOrder(context.Background(), ServiceOrderDraft{
			ClientName:  "João Silva",
			Vehicle:     entities.VehicleRef{Plate: "ABC-1234"},
			ServiceType: "Troca de óleo",
		})
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected store error, got %v", err)
		}
		if len(st.ServiceOrders()) != 0 {
			t.Fatalf("snapshot must stay untouched on store failure")
		}
	})

	t.Run("total recomputed from labor and parts", func(t *testing.T) {
		st, m := newTestStore(t)
		knownVehicle(st, "ABC-1234")
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.parts.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		order, err := st.AddServiceOrder(context.Background(), ServiceOrderDraft{
			ClientName:  "João Silva",
			Vehicle:     entities.VehicleRef{Plate: "ABC-1234"},
			ServiceType: "Troca de óleo",
			LaborCost:   80,
			Parts: []PartDraft{
				{Name: "Óleo 5W30", Price: 35, Quantity: 4},
				{Name: "Filtro de óleo", Price: 25, Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Total != 245 {
			t.Fatalf("expected total 245, got %v", order.Total)
		}
		if order.ID == "" || order.CreatedAt != testNow || order.UpdatedAt != testNow {
			t.Fatalf("expected generated id and timestamps, got %+v", order)
		}
		if order.Status != entities.ServiceOrderStatusRascunho {
			t.Fatalf("expected draft status, got %s", order.Status)
		}
		if len(st.ServiceOrders()) != 1 {
			t.Fatalf("expected order in snapshot")
		}
	})

	t.Run("referencing inventory decrements stock", func(t *testing.T) {
		st, m := newTestStore(t)
		knownVehicle(st, "ABC-1234")
		st.inventory = []entities.InventoryItem{{ID: "b8a6f6e2-0000-4000-8000-000000000001", Name: "Óleo 5W30", Stock: 20, MinStock: 5}}

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.parts.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(nil)
		m.inventory.EXPECT().UpdateStock(gomock.Any(), "b8a6f6e2-0000-4000-8000-000000000001", 16).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		_, err := st.AddServiceOrder(context.Background(), ServiceOrderDraft{
			ClientName:  "João Silva",
			Vehicle:     entities.VehicleRef{Plate: "ABC-1234"},
			ServiceType: "Troca de óleo",
			Parts: []PartDraft{
				{Name: "Óleo 5W30", Price: 35, Quantity: 4, InventoryItemID: "b8a6f6e2-0000-4000-8000-000000000001"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Inventory()[0].Stock != 16 {
			t.Fatalf("expected stock 16, got %d", st.Inventory()[0].Stock)
		}
	})

	t.Run("vehicle created on first sight of plate", func(t *testing.T) {
		st, m := newTestStore(t)
		m.vehicles.EXPECT().GetByPlate(gomock.Any(), "NEW-0001").Return(entities.Vehicle{}, nil)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) error {
				if v.Plate != "NEW-0001" || v.Model != "Fiat Uno" {
					t.Fatalf("unexpected vehicle: %+v", v)
				}
				return nil
			},
		)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		_, err := st.AddServiceOrder(context.Background(), ServiceOrderDraft{
			ClientName:  "João Silva",
			Vehicle:     entities.VehicleRef{Model: "Fiat Uno", Year: "2018", Plate: "NEW-0001"},
			ServiceType: "Troca de óleo",
			LaborCost:   80,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(st.Vehicles()) != 1 {
			t.Fatalf("expected vehicle in snapshot")
		}
	})
}

func TestStore_UpdateServiceOrder(t *testing.T) {
	existing := entities.ServiceOrder{
		ID:          "7b6b1b9a-0000-4000-8000-000000000010",
		ClientName:  "Maria",
		Vehicle:     entities.VehicleRef{Plate: "DEF-5678"},
		ServiceType: "Revisão",
		LaborCost:   100,
		Total:       100,
		Status:      entities.ServiceOrderStatusEmAndamento,
		CreatedAt:   testNow.AddDate(0, 0, -1),
		UpdatedAt:   testNow.AddDate(0, 0, -1),
	}

	t.Run("malformed id rejected before store call", func(t *testing.T) {
		st, m := newTestStore(t)
		m.notifier.EXPECT().Failure(gomock.Any())

		_, err := st.UpdateServiceOrder(context.Background(), "not-a-uuid", ServiceOrderPatch{})
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("patch merges and refreshes total and updated at", func(t *testing.T) {
		st, m := newTestStore(t)
		st.orders = []entities.ServiceOrder{existing}

		labor := 150.0
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		updated, err := st.UpdateServiceOrder(context.Background(), existing.ID, ServiceOrderPatch{LaborCost: &labor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.LaborCost != 150 || updated.Total != 150 {
			t.Fatalf("expected recomputed total 150, got %+v", updated)
		}
		if !updated.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected refreshed UpdatedAt")
		}
		if updated.ClientName != "Maria" {
			t.Fatalf("untouched fields must survive the merge")
		}
	})

	t.Run("store failure keeps old record in snapshot", func(t *testing.T) {
		st, m := newTestStore(t)
		st.orders = []entities.ServiceOrder{existing}

		labor := 999.0
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))
		m.notifier.EXPECT().Failure(gomock.Any())

		_, err := st.UpdateServiceOrder(context.Background(), existing.ID, ServiceOrderPatch{LaborCost: &labor})
		if err == nil {
			t.Fatalf("expected error")
		}
		if st.ServiceOrders()[0].LaborCost != 100 {
			t.Fatalf("snapshot must keep the old record")
		}
	})
}

func TestStore_DeleteServiceOrder(t *testing.T) {
	order := entities.ServiceOrder{
		ID:     "7b6b1b9a-0000-4000-8000-000000000020",
		Status: entities.ServiceOrderStatusEmAndamento,
		Parts: []entities.Part{
			{ID: "p1", Name: "Óleo", InventoryItemID: "inv-1", Quantity: 4},
		},
	}

	t.Run("cascades to parts and never restores stock", func(t *testing.T) {
		st, m := newTestStore(t)
		st.orders = []entities.ServiceOrder{order}
		st.inventory = []entities.InventoryItem{{ID: "inv-1", Stock: 16}}

		m.parts.EXPECT().DeleteByServiceOrderID(gomock.Any(), order.ID).Return(nil)
		m.orders.EXPECT().Delete(gomock.Any(), order.ID).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		if err := st.DeleteServiceOrder(context.Background(), order.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(st.ServiceOrders()) != 0 {
			t.Fatalf("order must leave the snapshot")
		}
		if st.Inventory()[0].Stock != 16 {
			t.Fatalf("stock consumed by the order must not be restored")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		st, m := newTestStore(t)
		m.notifier.EXPECT().Failure(gomock.Any())

		err := st.DeleteServiceOrder(context.Background(), "7b6b1b9a-0000-4000-8000-000000000099")
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})
}

func TestStore_CompleteServiceOrder(t *testing.T) {
	base := entities.ServiceOrder{
		ID:          "7b6b1b9a-0000-4000-8000-000000000030",
		ClientName:  "Carlos",
		Vehicle:     entities.VehicleRef{Plate: "GHI-9012"},
		ServiceType: "Freios",
		LaborCost:   120,
		Total:       340,
		Status:      entities.ServiceOrderStatusEmAndamento,
		Parts:       []entities.Part{{Name: "Pastilhas", Price: 180, Quantity: 1}},
	}

	t.Run("stamps completion and appends history", func(t *testing.T) {
		st, m := newTestStore(t)
		st.orders = []entities.ServiceOrder{base}

		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.vehicleServices.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.VehicleService{})).DoAndReturn(
			func(_ context.Context, vs entities.VehicleService) error {
				if vs.VehicleID != "GHI-9012" || vs.Price != 340 || vs.ServiceType != "Freios" {
					t.Fatalf("unexpected history entry: %+v", vs)
				}
				return nil
			},
		)
		m.notifier.EXPECT().Success(gomock.Any())

		completed, err := st.CompleteServiceOrder(context.Background(), base.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completed.Status != entities.ServiceOrderStatusConcluido {
			t.Fatalf("expected CONCLUIDO, got %s", completed.Status)
		}
		if completed.CompletedAt == nil || !completed.CompletedAt.Equal(testNow) {
			t.Fatalf("expected CompletedAt stamped with now")
		}
		if len(st.VehicleServices()) != 1 {
			t.Fatalf("expected history entry in snapshot")
		}
	})

	t.Run("second completion is a no-op", func(t *testing.T) {
		st, m := newTestStore(t)
		st.orders = []entities.ServiceOrder{base}

		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.vehicleServices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Success(gomock.Any())

		first, err := st.CompleteServiceOrder(context.Background(), base.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// No further repository or history expectations: the mocks fail the
		// test if the second call writes anything.
		second, err := st.CompleteServiceOrder(context.Background(), base.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.CompletedAt.Equal(*first.CompletedAt) {
			t.Fatalf("CompletedAt must not move on re-completion")
		}
		if len(st.VehicleServices()) != 1 {
			t.Fatalf("history must not duplicate on re-completion")
		}
	})

	t.Run("canceled order cannot complete", func(t *testing.T) {
		st, m := newTestStore(t)
		canceled := base
		canceled.Status = entities.ServiceOrderStatusCancelado
		st.orders = []entities.ServiceOrder{canceled}
		m.notifier.EXPECT().Failure(gomock.Any())

		_, err := st.CompleteServiceOrder(context.Background(), base.ID)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("history failure does not mask completion", func(t *testing.T) {
		st, m := newTestStore(t)
		st.orders = []entities.ServiceOrder{base}

		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.vehicleServices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("history table down"))
		m.notifier.EXPECT().Success(gomock.Any())
		m.notifier.EXPECT().Failure(gomock.Any())

		completed, err := st.CompleteServiceOrder(context.Background(), base.ID)
		if err != nil {
			t.Fatalf("completion must succeed despite history failure, got %v", err)
		}
		if completed.Status != entities.ServiceOrderStatusConcluido {
			t.Fatalf("expected CONCLUIDO, got %s", completed.Status)
		}
		if st.ServiceOrders()[0].Status != entities.ServiceOrderStatusConcluido {
			t.Fatalf("snapshot must keep the completed order")
		}
	})

	t.Run("payment capture runs when gateway configured", func(t *testing.T) {
		st, m := newTestStore(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockIPaymentGateway(ctrl)
		st.gateway = gateway
		st.orders = []entities.ServiceOrder{base}

		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.vehicleServices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), base.ID, gomock.Any(), 340.0).Return("mp-1", "approved", nil)
		m.notifier.EXPECT().Success(gomock.Any())

		if _, err := st.CompleteServiceOrder(context.Background(), base.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
