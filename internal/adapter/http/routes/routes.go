package routes

import (
	"context"
	"log"

	_ "fanvoyage/docs" // This will be auto-generated
	"fanvoyage/internal/adapter/http/handlers"
	repository2 "fanvoyage/internal/adapter/persistence/repository"
	appconfig "fanvoyage/internal/config"
	"fanvoyage/internal/domain/pricing"
	"fanvoyage/internal/infrastructure/database"
	"fanvoyage/internal/infrastructure/mail"
	"fanvoyage/internal/usecase"
	"fanvoyage/internal/usecase/interfaces"
	"fanvoyage/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.App.Environment != "production",
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zlog := logger.Get()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	zlog.Sugar().Infow("starting server", "addr", cfg.Server.Addr())
	if err := router.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *appconfig.Config) {
	ctx := context.Background()
	zlog := logger.Get()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	leadRepo := repository2.NewLeadDynamoRepository(ddb, cfg.Dynamo.LeadsTable)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb, cfg.Dynamo.QuotesTable)
	eventRepo := repository2.NewEventDynamoRepository(ddb, cfg.Dynamo.EventsTable)
	packageRepo := repository2.NewPackageDynamoRepository(ddb, cfg.Dynamo.PackagesTable)
	addOnRepo := repository2.NewAddOnDynamoRepository(ddb, cfg.Dynamo.AddOnsTable)
	itineraryRepo := repository2.NewItineraryDynamoRepository(ddb, cfg.Dynamo.ItineraryDaysTable)

	var notifier interfaces.IQuoteNotifier
	sesNotifier, err := mail.NewSESNotifier(ctx, cfg.Mail.Region, cfg.Mail.Sender, cfg.Mail.MockMode, zlog)
	if err != nil {
		zlog.Sugar().Warnw("quote notifier not configured", "error", err)
	} else {
		notifier = sesNotifier
	}

	engine := pricing.NewEngine(cfg.Pricing.SeasonalCalendarByMonth())

	leadUseCase := usecase.NewLeadUseCase(leadRepo, zlog)
	quoteUseCase := usecase.NewQuoteUseCase(
		quoteRepo,
		leadRepo,
		eventRepo,
		packageRepo,
		addOnRepo,
		itineraryRepo,
		notifier,
		engine,
		cfg.Pricing.QuoteValidityDays,
		zlog,
	)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, leadHandler)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
