package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ambunet/dispatch/internal/pkg/config"
	"github.com/ambunet/dispatch/internal/pkg/database"
	"github.com/ambunet/dispatch/internal/pkg/health"
	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/middleware"
	natspkg "github.com/ambunet/dispatch/internal/pkg/nats"
	"github.com/ambunet/dispatch/internal/pkg/server"
	accountHandler "github.com/ambunet/dispatch/services/account/handler"
	accountRepository "github.com/ambunet/dispatch/services/account/repository"
	accountUsecase "github.com/ambunet/dispatch/services/account/usecase"
	bookingGateway "github.com/ambunet/dispatch/services/booking/gateway"
	bookingHandler "github.com/ambunet/dispatch/services/booking/handler"
	bookingRepository "github.com/ambunet/dispatch/services/booking/repository"
	bookingUsecase "github.com/ambunet/dispatch/services/booking/usecase"
	fleetGateway "github.com/ambunet/dispatch/services/fleet/gateway"
	fleetHandler "github.com/ambunet/dispatch/services/fleet/handler"
	fleetRepository "github.com/ambunet/dispatch/services/fleet/repository"
	fleetUsecase "github.com/ambunet/dispatch/services/fleet/usecase"
)

func main() {
	appName := "dispatch"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	db := postgresClient.GetDB()

	// Repositories. The fleet repository doubles as the booking
	// repository's transactional fleet store, and the account
	// repository as its discount resolver.
	fleetRepo := fleetRepository.NewFleetRepository(configs, db)
	geoRepo := fleetRepository.NewGeoRepository(configs, redisClient)
	accountRepo := accountRepository.NewAccountRepository(configs, db)
	bookingRepo := bookingRepository.NewBookingRepository(configs, db, fleetRepo)

	// Gateways
	fleetGW := fleetGateway.NewFleetGW(natsClient)
	bookingGW := bookingGateway.NewBookingGW(natsClient)

	// Use cases
	fleetUC, err := fleetUsecase.NewFleetUC(configs, fleetRepo, geoRepo, fleetGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize fleet use case", logger.Err(err))
	}
	bookingUC, err := bookingUsecase.NewBookingUC(configs, bookingRepo, accountRepo, bookingGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize booking use case", logger.Err(err))
	}
	accountUC, err := accountUsecase.NewAccountUC(configs, accountRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize account use case", logger.Err(err))
	}

	// Handlers
	fleetH := fleetHandler.NewHandler(fleetUC, natsClient, configs)
	bookingH := bookingHandler.NewHandler(bookingUC, configs)
	accountH := accountHandler.NewHandler(accountUC, configs)

	if err := fleetH.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware())

	health.RegisterHealthEndpoints(e, appName, configs.App.Version,
		func(c echo.Context) error { return db.PingContext(c.Request().Context()) },
		func(c echo.Context) error { return redisClient.GetClient().Ping(c.Request().Context()).Err() },
		func(c echo.Context) error {
			if !natsClient.IsConnected() {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "nats disconnected")
			}
			return nil
		},
	)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	fleetH.RegisterRoutes(e)
	bookingH.RegisterRoutes(e)
	accountH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	srv.OnShutdown(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(ctx context.Context) error { return zapLogger.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
