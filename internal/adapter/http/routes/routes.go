package routes

import (
	"log"
	_ "oficina_api/docs" // This will be auto-generated
	"oficina_api/internal/adapter/http/handlers"
	repository2 "oficina_api/internal/adapter/persistence/repository"
	"oficina_api/internal/infrastructure/cache"
	"oficina_api/internal/infrastructure/database"
	"oficina_api/internal/infrastructure/logger"
	"oficina_api/internal/usecase"
	"oficina_api/internal/usecase/interfaces"
	"strconv"

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
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to build the logger: %v", err.Error())
	}

	ddb := database.ConnectDynamoDB()

	// A nil cache disables caching; use cases treat it as always-miss.
	var collectionCache interfaces.ICollectionCache
	if redisCache := cache.NewRedisCollectionCacheFromEnv(); redisCache != nil {
		collectionCache = redisCache
	}

	clienteRepo := repository2.NewClienteDynamoRepository(ddb)
	veiculoRepo := repository2.NewVeiculoDynamoRepository(ddb)
	funcionarioRepo := repository2.NewFuncionarioDynamoRepository(ddb)
	fornecedorRepo := repository2.NewFornecedorDynamoRepository(ddb)
	pecaRepo := repository2.NewPecaDynamoRepository(ddb)
	servicoRepo := repository2.NewServicoDynamoRepository(ddb)
	orcamentoRepo := repository2.NewOrcamentoDynamoRepository(ddb)
	osRepo := repository2.NewOrdemServicoDynamoRepository(ddb)
	contaReceberRepo := repository2.NewContaReceberDynamoRepository(ddb)
	contaGeralRepo := repository2.NewContaGeralDynamoRepository(ddb)
	sequenciaRepo := repository2.NewSequenciaDynamoRepository(ddb)

	clienteUseCase := usecase.NewClienteUseCase(clienteRepo, collectionCache)
	veiculoUseCase := usecase.NewVeiculoUseCase(veiculoRepo, collectionCache)
	funcionarioUseCase := usecase.NewFuncionarioUseCase(funcionarioRepo, collectionCache)
	fornecedorUseCase := usecase.NewFornecedorUseCase(fornecedorRepo, collectionCache)
	pecaUseCase := usecase.NewPecaUseCase(pecaRepo, collectionCache)
	servicoUseCase := usecase.NewServicoUseCase(servicoRepo, collectionCache)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo, clienteRepo, veiculoRepo, pecaRepo, servicoRepo, osRepo, sequenciaRepo, collectionCache)
	osUseCase := usecase.NewOrdemServicoUseCase(osRepo, orcamentoRepo, clienteRepo, veiculoRepo, sequenciaRepo, collectionCache)
	financeiroUseCase := usecase.NewFinanceiroUseCase(contaReceberRepo, contaGeralRepo, sequenciaRepo, collectionCache)
	dashboardUseCase := usecase.NewDashboardUseCase(clienteRepo, orcamentoRepo, osRepo)

	clienteHandler := handlers.NewClienteHandler(clienteUseCase, zlog)
	veiculoHandler := handlers.NewVeiculoHandler(veiculoUseCase, zlog)
	funcionarioHandler := handlers.NewFuncionarioHandler(funcionarioUseCase, zlog)
	fornecedorHandler := handlers.NewFornecedorHandler(fornecedorUseCase, zlog)
	pecaHandler := handlers.NewPecaHandler(pecaUseCase, zlog)
	servicoHandler := handlers.NewServicoHandler(servicoUseCase, zlog)
	orcamentoHandler := handlers.NewOrcamentoHandler(orcamentoUseCase, zlog)
	osHandler := handlers.NewOrdemServicoHandler(osUseCase, zlog)
	financeiroHandler := handlers.NewFinanceiroHandler(financeiroUseCase, zlog)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase, zlog)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCadastroRoutes(v1, clienteHandler, veiculoHandler, funcionarioHandler, fornecedorHandler, pecaHandler, servicoHandler)
	addOficinaRoutes(v1, orcamentoHandler, osHandler)
	addFinanceiroRoutes(v1, financeiroHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"code": "NOT_FOUND", "message": "Route not found"})
	})
}
