package main

import (
	"context"
	"log"
	"time"

	"courier-tracker/internal/core/config"
	"courier-tracker/internal/core/database"
	"courier-tracker/internal/core/logger"
	"courier-tracker/internal/core/metrics"
	"courier-tracker/internal/core/server"
	"courier-tracker/internal/core/store"
	consignmentadapter "courier-tracker/internal/features/consignments/adapters"
	consignmenthandler "courier-tracker/internal/features/consignments/handler"
	consignmentports "courier-tracker/internal/features/consignments/ports"
	consignmentservice "courier-tracker/internal/features/consignments/service"
	trackingadapter "courier-tracker/internal/features/tracking/adapters"
	"courier-tracker/internal/features/tracking/classifier"
	"courier-tracker/internal/features/tracking/domain"
	trackinghandler "courier-tracker/internal/features/tracking/handler"
	"courier-tracker/internal/features/tracking/reconcile"
	trackingservice "courier-tracker/internal/features/tracking/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// @title Courier Tracker API
// @version 1.0
// @description Reconciled shipment timelines and consignment number allocation.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize document store and run Health Check
	redisStore, err := store.NewRedisAdapter(cfg.Store.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis store", zap.Error(err))
	}
	defer redisStore.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisStore.Ping(ctx)
	cancel()
	if err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize legacy archive
	legacyDB, err := database.Open(cfg.Legacy.DBPath, &consignmentadapter.LegacyConsignment{})
	if err != nil {
		l.Fatal("Failed to open legacy archive", zap.Error(err))
	}
	defer database.Close(legacyDB)

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize Tracking Engine, Service & Handler
	table := classifier.Default()
	if cfg.Tracking.AliasTablePath != "" {
		table, err = classifier.LoadFile(cfg.Tracking.AliasTablePath)
		if err != nil {
			l.Fatal("Failed to load alias table", zap.Error(err))
		}
	}
	l.Info("Status alias table loaded", zap.Int("version", table.Version()))

	engine := reconcile.NewEngine(table, time.Duration(cfg.Tracking.DedupeWindowSeconds)*time.Second)
	documents := trackingadapter.NewRedisDocumentRepository(redisStore)
	trackingSvc := trackingservice.NewTrackingService(documents, engine, m)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Consignment Allocator: every live collection plus every legacy one
	var floorSources []consignmentports.FloorSource
	for _, kind := range domain.LookupOrder {
		floorSources = append(floorSources, consignmentadapter.NewIndexedFloorSource(redisStore, trackingadapter.Collection(kind)))
	}
	for _, name := range cfg.Legacy.LegacyCollectionNames() {
		floorSources = append(floorSources, consignmentadapter.NewLegacyFloorSource(legacyDB, name))
	}

	counter, err := consignmentadapter.NewRedisCounter(redisStore.Client(), cfg.Consignments.CounterKey)
	if err != nil {
		l.Fatal("Invalid consignment counter", zap.Error(err))
	}
	allocatorSvc := consignmentservice.NewAllocatorService(counter, floorSources, cfg.Consignments.Base, cfg.Consignments.CounterKey, m)
	consignmentHdl := consignmenthandler.NewConsignmentHandler(allocatorSvc)

	srv := server.New(cfg, prometheus.DefaultGatherer, redisStore)

	// Register Routes
	trackingHdl.RegisterRoutes(srv.App)
	consignmentHdl.RegisterRoutes(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
