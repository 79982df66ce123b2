package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sparechange/roundup/internal/pkg/config"
	"github.com/sparechange/roundup/internal/pkg/database"
	"github.com/sparechange/roundup/internal/pkg/health"
	"github.com/sparechange/roundup/internal/pkg/logger"
	"github.com/sparechange/roundup/internal/pkg/middleware"
	natspkg "github.com/sparechange/roundup/internal/pkg/nats"
	nrpkg "github.com/sparechange/roundup/internal/pkg/newrelic"
	"github.com/sparechange/roundup/internal/pkg/server"
	"github.com/sparechange/roundup/services/donations/gateway"
	"github.com/sparechange/roundup/services/donations/handler"
	httpHandler "github.com/sparechange/roundup/services/donations/handler/http"
	natsHandler "github.com/sparechange/roundup/services/donations/handler/nats"
	"github.com/sparechange/roundup/services/donations/repository"
	"github.com/sparechange/roundup/services/donations/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "donations-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic before the logger so log forwarding can attach
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Repository
	donationRepo := repository.NewDonationRepository(configs, postgresClient.GetDB(), redisClient)

	// Gateways
	paymentGW := gateway.NewStripeGateway(&configs.Stripe)
	feedGW := gateway.NewPlaidGateway(&configs.Plaid)
	eventGW := gateway.NewEventGateway(natsClient)

	// UseCase
	donationUC := usecase.NewDonationService(configs, donationRepo, paymentGW, feedGW, eventGW)

	// Handlers
	donationHandler := httpHandler.NewDonationHandler(donationUC)
	preferencesHandler := httpHandler.NewPreferencesHandler(donationUC)
	webhookHandler := httpHandler.NewWebhookHandler(donationUC, configs)
	donationNatsHandler := natsHandler.NewNatsHandler(donationUC, natsClient)

	h := handler.NewHandler(donationHandler, preferencesHandler, webhookHandler, donationNatsHandler)
	defer h.Close()

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	if err := h.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to register routes", zap.Error(err))
	}

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", zap.Error(err))
	}
}
