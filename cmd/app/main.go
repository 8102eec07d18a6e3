package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fastays/fastays/api"
	"github.com/fastays/fastays/config"
	"github.com/fastays/fastays/internal/bootstrap"
	"github.com/fastays/fastays/internal/catalog"
	"github.com/fastays/fastays/internal/kafka"
	"github.com/fastays/fastays/internal/metrics"
	"github.com/fastays/fastays/internal/service/auth"
	"github.com/fastays/fastays/internal/service/booking"
	"github.com/fastays/fastays/internal/state"
	"github.com/fastays/fastays/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightSource, err := newFlightSource(ctx, cfg)
	if err != nil {
		log.Fatalf("flight catalog: %v", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	store := storage.NewRedisStore(cfg.Redis, cfg.Booking.StorageKey)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	persister := booking.NewPersister(store, collector)
	bookingMachine := state.NewBookingMachine(persister.Persist)
	authMachine := state.NewAuthMachine()

	authService := auth.NewAuthService(authMachine,
		cfg.Auth.DemoPhoneNumber, cfg.Auth.DemoOtpCode,
		cfg.Auth.LoginLatency(), cfg.Auth.VerifyLatency(), collector)
	bookingService := booking.NewBookingService(bookingMachine, store,
		cfg.Booking.SubmitLatency(), collector,
		booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))

	// Hydrate completed bookings from the previous session.
	if err := bookingService.LoadBookings(ctx); err != nil {
		log.Printf("hydrate bookings: %v", err)
	}

	authHandler := api.NewAuthHandler(authService)
	flightHandler := api.NewFlightHandler(flightSource)
	bookingHandler := api.NewBookingHandler(bookingService, flightSource)

	if err := bootstrap.Run(ctx, cfg, authHandler, flightHandler, bookingHandler, metrics.Handler(registry)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newFlightSource(ctx context.Context, cfg *config.Config) (catalog.Source, error) {
	if cfg.Catalog.Source == "postgres" {
		pool, err := pgxpool.New(ctx, cfg.Catalog.Database.DSN())
		if err != nil {
			return nil, err
		}
		return catalog.NewPGSource(pool), nil
	}
	return catalog.NewFileSource(cfg.Catalog.FilePath)
}
