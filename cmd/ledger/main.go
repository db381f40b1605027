package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/ledger/internal/pkg/config"
	"github.com/sessionbook/ledger/internal/pkg/database"
	"github.com/sessionbook/ledger/internal/pkg/health"
	"github.com/sessionbook/ledger/internal/pkg/logger"
	"github.com/sessionbook/ledger/internal/pkg/middleware"
	nsqpkg "github.com/sessionbook/ledger/internal/pkg/nsq"
	"github.com/sessionbook/ledger/internal/pkg/server"
	"github.com/sessionbook/ledger/services/ledger/gateway"
	"github.com/sessionbook/ledger/services/ledger/handler"
	httpHandler "github.com/sessionbook/ledger/services/ledger/handler/http"
	"github.com/sessionbook/ledger/services/ledger/repository"
	"github.com/sessionbook/ledger/services/ledger/usecase"
)

func main() {
	appName := "ledger-service"
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).
		WithField("environment", configs.App.Environment).
		Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client, optional: summary cache and rate limiting
	// are skipped when no host is configured
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
	}

	// Initialize NSQ producer, optional: event publication is skipped when
	// no NSQD address is configured
	var producer *nsqpkg.Producer
	if configs.NSQ.NSQDAddress != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ")
		}
		defer producer.Stop()
	}

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB(), redisClient)

	// Initialize gateway
	ledgerGW := gateway.NewLedgerGW(producer)

	// Initialize usecase
	ledgerUC := usecase.NewLedgerUC(transactionRepo, ledgerGW, appLogger.Logger)

	// Initialize handlers
	transactionHandler := httpHandler.NewTransactionHandler(ledgerUC, configs.Session)
	Handler := handler.NewHandler(transactionHandler, configs, redisClient)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))
	e.Use(middleware.RecoveryMiddleware(appLogger.Logger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(
		e,
		appLogger.Logger,
		configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second,
	)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server exited with error")
	}
}
