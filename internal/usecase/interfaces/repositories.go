package interfaces

import (
	"context"

	"oficina_prime/internal/domain/entities"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// Per-entity persistence contracts backing the application state store.
// Every call is fallible and never retried: the store leaves its snapshot
// untouched when a write fails.

type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) error
	Update(ctx context.Context, o entities.ServiceOrder) error
	Delete(ctx context.Context, id string) error
}

// IPartRepository stores the parts table separately from orders. Parts are
// owned by their order, so deletion happens by service order id (cascade).
type IPartRepository interface {
	List(ctx context.Context) ([]entities.Part, error)
	CreateMany(ctx context.Context, parts []entities.Part) error
	DeleteByServiceOrderID(ctx context.Context, serviceOrderID string) error
}

type IAppointmentRepository interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) error
	Update(ctx context.Context, a entities.Appointment) error
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
}

type IInventoryRepository interface {
	List(ctx context.Context) ([]entities.InventoryItem, error)
	Create(ctx context.Context, item entities.InventoryItem) error
	Update(ctx context.Context, item entities.InventoryItem) error
	UpdateStock(ctx context.Context, id string, stock int) error
	Delete(ctx context.Context, id string) error
}

type IExpenseRepository interface {
	List(ctx context.Context) ([]entities.Expense, error)
	Create(ctx context.Context, e entities.Expense) error
	Update(ctx context.Context, e entities.Expense) error
	Delete(ctx context.Context, id string) error
}

type IVehicleRepository interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
	Create(ctx context.Context, v entities.Vehicle) error
}

// IVehicleServiceRepository persists the append-only history log.
type IVehicleServiceRepository interface {
	List(ctx context.Context) ([]entities.VehicleService, error)
	Create(ctx context.Context, vs entities.VehicleService) error
}
