package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/zanzibar-explore/tours-backend/config"
	"github.com/zanzibar-explore/tours-backend/internal/bootstrap"
	"github.com/zanzibar-explore/tours-backend/internal/cache"
	"github.com/zanzibar-explore/tours-backend/internal/kafka"
	"github.com/zanzibar-explore/tours-backend/internal/repository"
	"github.com/zanzibar-explore/tours-backend/internal/seed"
	"github.com/zanzibar-explore/tours-backend/internal/service/contact"
	"github.com/zanzibar-explore/tours-backend/internal/service/gallery"
	"github.com/zanzibar-explore/tours-backend/internal/service/tours"
	"github.com/zanzibar-explore/tours-backend/internal/service/transfers"
)

func main() {
	godotenv.Load()

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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	// Seed failure is non-fatal: the service serves whatever catalog exists.
	if err := seed.Run(ctx, pool); err != nil {
		log.Printf("seed catalog: %v (continuing)", err)
	}

	catalogCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tourRepo := repository.NewTourRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	transferRepo := repository.NewTransferRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)

	tourService := tours.NewTourService(tourRepo, bookingRepo, catalogCache, producer, cfg.Kafka.EventsTopic)
	transferService := transfers.NewTransferService(transferRepo, vehicleRepo, catalogCache, producer, cfg.Kafka.EventsTopic)
	contactService := contact.NewContactService(contactRepo, producer, cfg.Kafka.EventsTopic)
	galleryService := gallery.NewGalleryService(galleryRepo, catalogCache)

	if err := bootstrap.Run(ctx, cfg, tourService, transferService, contactService, galleryService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
