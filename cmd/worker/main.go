package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/autohub/fleetrental/config"
	"github.com/autohub/fleetrental/internal/email"
	"github.com/autohub/fleetrental/internal/kafka"
	"github.com/autohub/fleetrental/internal/logger"
	"github.com/autohub/fleetrental/internal/repository"
	"github.com/autohub/fleetrental/internal/service/rentals"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	rentalRepo := repository.NewRentalRepository(pool)
	ledgerService := rentals.NewLedgerService(rentalRepo, producer, cfg.Kafka.BookingsTopic)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, sender.Send); err != nil {
			logger.Log.WithError(err).Info("consumer stopped")
		}
	}()

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Worker.CompletionSchedule, func() {
		completed, err := ledgerService.CompleteFinished(ctx)
		if err != nil {
			logger.Log.WithError(err).Error("rental completion sweep failed")
			return
		}
		if len(completed) > 0 {
			logger.Log.WithField("rentals", len(completed)).Info("completed finished rentals")
		}
	})
	if err != nil {
		logger.Log.Fatalf("schedule completion sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	logger.Log.Infof("received signal %v, shutting down", s)
}
