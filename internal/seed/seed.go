// Package seed holds the built-in sample dataset used when the initial bulk
// fetch of a collection fails. The shop's UI should never start empty.
package seed

import (
	"time"

	"github.com/google/uuid"

	"oficina_prime/internal/domain/entities"
)

func ServiceOrders(now time.Time) []entities.ServiceOrder {
	yesterday := now.AddDate(0, 0, -1)
	return []entities.ServiceOrder{
		{
			ID:          uuid.NewString(),
			ClientName:  "João Silva",
			Vehicle:     entities.VehicleRef{Model: "Fiat Uno", Year: "2018", Plate: "ABC-1234"},
			ServiceType: "Troca de óleo e filtros",
			Parts: []entities.Part{
				{ID: uuid.NewString(), Name: "Óleo 5W30", Price: 35, Quantity: 4},
				{ID: uuid.NewString(), Name: "Filtro de óleo", Price: 25, Quantity: 1},
				{ID: uuid.NewString(), Name: "Filtro de ar", Price: 45, Quantity: 1},
			},
			LaborCost: 80,
			Total:     290,
			Status:    entities.ServiceOrderStatusEmAndamento,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			ClientName:  "Maria Oliveira",
			Vehicle:     entities.VehicleRef{Model: "Honda Fit", Year: "2020", Plate: "DEF-5678"},
			ServiceType: "Revisão completa",
			Parts: []entities.Part{
				{ID: uuid.NewString(), Name: "Óleo 5W30", Price: 35, Quantity: 4},
				{ID: uuid.NewString(), Name: "Filtro de óleo", Price: 30, Quantity: 1},
				{ID: uuid.NewString(), Name: "Filtro de ar", Price: 50, Quantity: 1},
				{ID: uuid.NewString(), Name: "Filtro de combustível", Price: 80, Quantity: 1},
				{ID: uuid.NewString(), Name: "Filtro de ar condicionado", Price: 60, Quantity: 1},
			},
			LaborCost:   150,
			Total:       460,
			Status:      entities.ServiceOrderStatusConcluido,
			CreatedAt:   now.AddDate(0, 0, -2),
			UpdatedAt:   yesterday,
			CompletedAt: &yesterday,
		},
		{
			ID:          uuid.NewString(),
			ClientName:  "Ana Santos",
			Vehicle:     entities.VehicleRef{Model: "Toyota Corolla", Year: "2021", Plate: "JKL-3456"},
			ServiceType: "Alinhamento e balanceamento",
			LaborCost:   150,
			Total:       150,
			Status:      entities.ServiceOrderStatusRascunho,
			CreatedAt:   yesterday,
			UpdatedAt:   yesterday,
		},
	}
}

func Appointments(now time.Time) []entities.Appointment {
	return []entities.Appointment{
		{
			ID:          uuid.NewString(),
			ClientName:  "Roberto Campos",
			Vehicle:     entities.VehicleRef{Model: "Hyundai HB20", Year: "2020", Plate: "MNO-7890"},
			ServiceType: "Troca de óleo",
			Date:        now.AddDate(0, 0, 1).Format("2006-01-02"),
			Time:        "09:30",
			Notes:       "Cliente solicitou uso de óleo sintético",
			Status:      entities.AppointmentStatusAgendado,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			ClientName:  "Fernanda Lima",
			Vehicle:     entities.VehicleRef{Model: "Jeep Renegade", Year: "2019", Plate: "PQR-1234"},
			ServiceType: "Revisão de 40.000km",
			Date:        now.AddDate(0, 0, 2).Format("2006-01-02"),
			Time:        "14:00",
			Status:      entities.AppointmentStatusAgendado,
			CreatedAt:   now,
		},
	}
}

func Inventory() []entities.InventoryItem {
	return []entities.InventoryItem{
		{ID: uuid.NewString(), Name: "Óleo 5W30 (1L)", PurchasePrice: 25, SellingPrice: 35, Stock: 20, MinStock: 5},
		{ID: uuid.NewString(), Name: "Filtro de óleo universal", PurchasePrice: 18, SellingPrice: 25, Stock: 15, MinStock: 5},
		{ID: uuid.NewString(), Name: "Filtro de ar universal", PurchasePrice: 35, SellingPrice: 45, Stock: 10, MinStock: 4},
		{ID: uuid.NewString(), Name: "Pastilhas de freio dianteiras", PurchasePrice: 120, SellingPrice: 180, Stock: 6, MinStock: 2},
		{ID: uuid.NewString(), Name: "Fluido de freio DOT4 (500ml)", PurchasePrice: 30, SellingPrice: 40, Stock: 8, MinStock: 3},
	}
}

func Expenses(now time.Time) []entities.Expense {
	return []entities.Expense{
		{ID: uuid.NewString(), Description: "Compra de ferramentas", Amount: 450, Date: now.AddDate(0, 0, -10), Category: "Equipamentos"},
		{ID: uuid.NewString(), Description: "Reposição de estoque", Amount: 1200, Date: now.AddDate(0, 0, -5), Category: "Peças"},
		{ID: uuid.NewString(), Description: "Conta de energia", Amount: 380, Date: now.AddDate(0, 0, -2), Category: "Utilidades"},
	}
}
