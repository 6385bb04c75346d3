package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/config"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/database"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/health"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/middleware"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/nats"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/observability"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/retry"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/server"

	bookinggw "github.com/sieless/Taxi-Tao-sub000/services/booking/gateway/nats"
	bookinghandler "github.com/sieless/Taxi-Tao-sub000/services/booking/handler/http"
	bookingrepo "github.com/sieless/Taxi-Tao-sub000/services/booking/repository"
	bookinguc "github.com/sieless/Taxi-Tao-sub000/services/booking/usecase"

	matchhandler "github.com/sieless/Taxi-Tao-sub000/services/match/handler/http"
	matchrepo "github.com/sieless/Taxi-Tao-sub000/services/match/repository"
	matchuc "github.com/sieless/Taxi-Tao-sub000/services/match/usecase"

	negotiationgw "github.com/sieless/Taxi-Tao-sub000/services/negotiation/gateway/nats"
	negotiationhandler "github.com/sieless/Taxi-Tao-sub000/services/negotiation/handler/http"
	negotiationrepo "github.com/sieless/Taxi-Tao-sub000/services/negotiation/repository"
	negotiationuc "github.com/sieless/Taxi-Tao-sub000/services/negotiation/usecase"

	locationgw "github.com/sieless/Taxi-Tao-sub000/services/location/gateway/nats"
	locationhandler "github.com/sieless/Taxi-Tao-sub000/services/location/handler/http"
	locationrepo "github.com/sieless/Taxi-Tao-sub000/services/location/repository"
	locationuc "github.com/sieless/Taxi-Tao-sub000/services/location/usecase"

	pricinghandler "github.com/sieless/Taxi-Tao-sub000/services/pricing/handler/http"
	pricingrepo "github.com/sieless/Taxi-Tao-sub000/services/pricing/repository"
	pricinguc "github.com/sieless/Taxi-Tao-sub000/services/pricing/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

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
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	retrier := retry.NewWithDefaults(zapLogger)
	db := postgresClient.GetDB()

	// Initialize repositories
	bookingRepository := bookingrepo.NewBookingRepository(configs, db)
	pricingRepository := pricingrepo.NewPricingRepository(configs, db)
	matchRepository := matchrepo.NewMatchRepository(configs, db)
	negotiationRepository := negotiationrepo.NewNegotiationRepository(configs, db)
	locationRepository := locationrepo.NewLocationRepository(redisClient)

	// Initialize gateways
	bookingGW := bookinggw.NewBookingGW(natsClient, retrier)
	negotiationGW := negotiationgw.NewNegotiationGW(natsClient, retrier)
	locationGW := locationgw.NewLocationGW(natsClient)

	// Initialize usecases
	bookingUC := bookinguc.NewBookingUC(configs, bookingRepository, bookingGW)
	pricingUC := pricinguc.NewPricingUC(pricingRepository)
	matchUC := matchuc.NewMatchUC(matchRepository, pricingRepository)
	negotiationUC := negotiationuc.NewNegotiationUC(configs, negotiationRepository, negotiationGW)
	locationUC := locationuc.NewLocationUC(configs, locationRepository, locationGW, bookingUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zapLogger))
	e.Use(middleware.Recovery())

	// Register health and metrics endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, map[string]health.Check{
		"postgres": func() error {
			return db.Ping()
		},
		"redis": func() error {
			return redisClient.Client.Ping(context.Background()).Err()
		},
	})
	observability.RegisterMetricsEndpoint(e)

	// Register service routes
	bookinghandler.NewBookingHandler(bookingUC).RegisterRoutes(e)
	pricinghandler.NewPricingHandler(pricingUC).RegisterRoutes(e)
	matchhandler.NewMatchHandler(matchUC).RegisterRoutes(e)
	negotiationhandler.NewNegotiationHandler(negotiationUC).RegisterRoutes(e)
	locationhandler.NewLocationHandler(locationUC).RegisterRoutes(e)

	// Register cleanup in reverse dependency order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Start server with graceful shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownGraceSec)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
