package routes

import (
	"oficina_prime/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathAppointments  = "/appointments"
	PathInventory     = "/inventory"
	PathExpenses      = "/expenses"
	PathVehicles      = "/vehicles"
	PathReports       = "/reports"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	serviceOrderHandler *handlers.ServiceOrderHandler,
	appointmentHandler *handlers.AppointmentHandler,
	inventoryHandler *handlers.InventoryHandler,
	expenseHandler *handlers.ExpenseHandler,
	vehicleHandler *handlers.VehicleHandler,
	reportHandler *handlers.ReportHandler,
) {
	serviceOrders := rg.Group(PathServiceOrders)
	{
		serviceOrders.GET("", serviceOrderHandler.ListServiceOrders)
		serviceOrders.POST("", serviceOrderHandler.CreateServiceOrder)
		serviceOrders.PATCH("/:id", serviceOrderHandler.UpdateServiceOrder)
		serviceOrders.DELETE("/:id", serviceOrderHandler.DeleteServiceOrder)
		serviceOrders.POST("/:id/complete", serviceOrderHandler.CompleteServiceOrder)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.PATCH("/:id", appointmentHandler.UpdateAppointment)
		appointments.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.GET("", inventoryHandler.ListInventory)
		inventory.POST("", inventoryHandler.CreateInventoryItem)
		inventory.PATCH("/:id", inventoryHandler.UpdateInventoryItem)
		inventory.DELETE("/:id", inventoryHandler.DeleteInventoryItem)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.PATCH("/:id", expenseHandler.UpdateExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:plate/services", vehicleHandler.GetVehicleServices)
		vehicles.POST("/:plate/services", vehicleHandler.CreateVehicleService)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/summary", reportHandler.GetSummary)
		reports.GET("/chart", reportHandler.GetChart)
	}
}
