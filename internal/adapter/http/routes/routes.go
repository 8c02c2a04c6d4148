package routes

import (
	"context"
	"os"
	"strings"
	"time"

	_ "cotizador_service/docs" // swagger registration
	"cotizador_service/internal/adapter/http/handlers"
	"cotizador_service/internal/adapter/persistence/repository"
	"cotizador_service/internal/domain/pricing"
	appconfig "cotizador_service/internal/infrastructure/config"
	"cotizador_service/internal/infrastructure/database"
	ebevents "cotizador_service/internal/infrastructure/events"
	"cotizador_service/internal/infrastructure/pdf"
	"cotizador_service/internal/infrastructure/storage"
	"cotizador_service/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.App)
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(cfg *appconfig.Config) {
	awsCfg, err := database.NewAWSConfig(context.Background(), cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create aws config")
	}

	ddb := database.NewDynamoDBClient(awsCfg)
	s3Client := s3.NewFromConfig(awsCfg)
	ebClient := eventbridge.NewFromConfig(awsCfg)

	quotationRepo := repository.NewQuotationDynamoRepository(ddb, cfg.Quotations.Table)
	artifactStore := storage.NewS3ArtifactStore(s3Client, cfg.Quotations.Bucket, cfg.AWS.Region)
	publisher := ebevents.NewEventBridgePublisher(ebClient, cfg.Quotations.EventBusName)
	renderer := pdf.NewRenderer()
	pricer := pricing.NewDefaultPolicy()

	quotationUseCase := usecase.NewQuotationUseCase(
		quotationRepo,
		artifactStore,
		publisher,
		renderer,
		pricer,
		cfg.Quotations.StrictTransitions,
	)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	eventHandler := handlers.NewEventHandler(quotationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, eventHandler)
}

func setupLogger(cfg appconfig.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "cotizador").Logger().Level(level)
	if cfg.LogFormat == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
	log.Logger = logger
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
