package routes

import (
	"log"
	"os"
	"strconv"

	_ "flota_ot/docs" // This will be auto-generated
	"flota_ot/internal/adapter/http/handlers"
	"flota_ot/internal/domain/entities"
	repository2 "flota_ot/internal/adapter/persistence/repository"
	"flota_ot/internal/infrastructure/backend"
	"flota_ot/internal/infrastructure/database"
	"flota_ot/internal/infrastructure/notification"
	"flota_ot/internal/store"
	"flota_ot/internal/usecase"

	"github.com/gin-gonic/gin"
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
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	backendClient, err := backend.NewClient(os.Getenv("BACKEND_API_URL"))
	if err != nil {
		log.Fatalf("Failed to configure the maintenance backend: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)

	notifier := notification.NewLogNotifier()
	filtrosStore := store.NewFiltrosStore()
	ordenesStore := store.NewOrdenesStore()
	sessionStore := store.NewSessionStore()

	sessionUseCase := usecase.NewSessionUseCase(sessionStore, sessionRepo)
	ordenesUseCase := usecase.NewOrdenesUseCase(backendClient, ordenesStore, notifier)
	filtrosUseCase := usecase.NewFiltrosUseCase(backendClient, filtrosStore, notifier)
	preventivaUseCase := usecase.NewPreventivaUseCase(backendClient, notifier)
	catalogo := usecase.NewSistemasCatalog(backendClient, notifier)
	editFlowUseCase := usecase.NewEditFlowUseCase(ordenesUseCase, backendClient, catalogo, notifier)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	ordenesHandler := handlers.NewOrdenesHandler(ordenesUseCase)
	editFlowHandler := handlers.NewEditFlowHandler(editFlowUseCase)
	filtrosHandler := handlers.NewFiltrosHandler(filtrosUseCase)
	sistemasHandler := handlers.NewSistemasHandler(catalogo, backendClient)
	preventivaHandler := handlers.NewPreventivaHandler(preventivaUseCase)
	exportHandler := handlers.NewExportHandler(ordenesUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler, sessionUseCase)

	// Todo lo demás exige sesión y el permiso del módulo de OT
	ot := v1.Group("")
	ot.Use(handlers.RequireSession(sessionUseCase))
	ot.Use(handlers.RequirePermission(entities.PermisoOrdenesTrabajo))
	addOrdenesTrabajoRoutes(ot, ordenesHandler, editFlowHandler, filtrosHandler, sistemasHandler, preventivaHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
