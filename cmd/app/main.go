package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ckms/cmd"
	_ "ckms/docs"
	httpadapter "ckms/internal/adapters/in/http"
	"ckms/internal/adapters/in/http/middleware"
	postgresadapter "ckms/internal/adapters/out/postgres"
	"ckms/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Central Kitchen Management Service API
// @version 1.0
// @description Order, shipment and inventory management for a central kitchen and its franchise stores.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgresadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReconcileOrderFulfillmentCommandHandler(),
		app.ActiveOrderSource(),
		configs.FulfillmentSweepSchedule,
		app.CreateExpireBatchesCommandHandler(),
		configs.BatchExpirySchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		AuthJWKSURL:              goDotEnvVariable("AUTH_JWKS_URL"),
		FulfillmentSweepSchedule: goDotEnvVariable("FULFILLMENT_SWEEP_SCHEDULE"),
		BatchExpirySchedule:      goDotEnvVariable("BATCH_EXPIRY_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Validator = httpadapter.NewRequestValidator()
	e.HTTPErrorHandler = httpadapter.NewHTTPErrorHandler(logger)

	auth, err := middleware.NewJWKSAuth(context.Background(), configs.AuthJWKSURL)
	if err != nil {
		log.Fatalf("Error initializing JWKS auth: %v", err)
	}

	server := httpadapter.NewServer(app.NewHTTPHandlers())
	server.RegisterRoutes(e, auth)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil {
			logger.Info("Web server stopped", "reason", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}
