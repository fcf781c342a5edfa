package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autohub/fleetrental/api"
	"github.com/autohub/fleetrental/config"
	"github.com/autohub/fleetrental/internal/bootstrap"
	"github.com/autohub/fleetrental/internal/cache"
	"github.com/autohub/fleetrental/internal/kafka"
	"github.com/autohub/fleetrental/internal/logger"
	"github.com/autohub/fleetrental/internal/repository"
	"github.com/autohub/fleetrental/internal/service/booking"
	"github.com/autohub/fleetrental/internal/service/customers"
	"github.com/autohub/fleetrental/internal/service/fleet"
	"github.com/autohub/fleetrental/internal/service/rentals"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.VehiclesCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	vehicleRepo := repository.NewVehicleRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)

	fleetService := fleet.NewFleetService(vehicleRepo, redisCache)
	directory := customers.NewDirectory(customerRepo)
	ledgerService := rentals.NewLedgerService(rentalRepo, producer, cfg.Kafka.BookingsTopic)
	bookingService := booking.NewBookingService(
		bookingRepo,
		vehicleRepo,
		directory,
		redisCache,
		producer,
		cfg.Kafka.BookingsTopic,
		time.Duration(cfg.Booking.VehicleLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	// Explicit catalog bootstrap, kept out of the read path.
	if err := fleetService.EnsureDefaultFleet(ctx); err != nil {
		logger.Log.Fatalf("seed default fleet: %v", err)
	}

	router := bootstrap.NewRouter(bootstrap.Handlers{
		Vehicles:  api.NewVehicleHandler(fleetService),
		Bookings:  api.NewBookingHandler(bookingService),
		Rentals:   api.NewRentalHandler(ledgerService),
		Customers: api.NewCustomerHandler(directory),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		logger.Log.Fatalf("server error: %v", err)
	}
}
