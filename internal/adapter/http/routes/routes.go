package routes

import (
	"context"
	"os"
	"strconv"

	"oficina_prime/internal/adapter/http/handlers"
	repository2 "oficina_prime/internal/adapter/persistence/repository"
	"oficina_prime/internal/infrastructure/database"
	"oficina_prime/internal/infrastructure/notification"
	"oficina_prime/internal/infrastructure/payments"
	"oficina_prime/internal/usecase"
	"oficina_prime/internal/usecase/interfaces"
	"oficina_prime/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	repos := usecase.Repositories{
		ServiceOrders:   repository2.NewServiceOrderDynamoRepository(ddb),
		Parts:           repository2.NewPartDynamoRepository(ddb),
		Appointments:    repository2.NewAppointmentDynamoRepository(ddb),
		Inventory:       repository2.NewInventoryDynamoRepository(ddb),
		Expenses:        repository2.NewExpenseDynamoRepository(ddb),
		Vehicles:        repository2.NewVehicleDynamoRepository(ddb),
		VehicleServices: repository2.NewVehicleServiceDynamoRepository(ddb),
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured, payment capture disabled")
	} else {
		paymentGateway = mpGateway
	}

	store := usecase.NewStore(repos, notification.NewLogNotifier(), paymentGateway)
	store.Load(context.Background())

	sweeper := worker.NewOverdueSweeper(store)
	if err := sweeper.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start overdue sweeper")
	}

	serviceOrderHandler := handlers.NewServiceOrderHandler(store)
	appointmentHandler := handlers.NewAppointmentHandler(store)
	inventoryHandler := handlers.NewInventoryHandler(store)
	expenseHandler := handlers.NewExpenseHandler(store)
	vehicleHandler := handlers.NewVehicleHandler(store)
	reportHandler := handlers.NewReportHandler(store)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, serviceOrderHandler, appointmentHandler, inventoryHandler, expenseHandler, vehicleHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
