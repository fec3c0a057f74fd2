package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/palettehq/marketplace-sync/internal/adapter"
	"github.com/palettehq/marketplace-sync/internal/config"
	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/metadata"
	"github.com/palettehq/marketplace-sync/internal/providers/jetstream"
	"github.com/palettehq/marketplace-sync/internal/store"
	"github.com/palettehq/marketplace-sync/internal/subgraph"
	"github.com/palettehq/marketplace-sync/internal/sync"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadSyncWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sync-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting sync worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Sync.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Initialize one indexer client per configured network
	clients := make(map[domain.Network]subgraph.Client)
	networks := make([]sync.NetworkJobs, 0, len(cfg.Networks))
	for name, networkCfg := range cfg.Networks {
		network := domain.Network(name)
		if !domain.IsValidNetwork(network) {
			logger.FatalCtx(ctx, "Unknown network in configuration", zap.String("network", name))
		}
		if networkCfg.SubgraphURL == "" {
			logger.FatalCtx(ctx, "Missing subgraph URL for network", zap.String("network", name))
		}

		clients[network] = subgraph.NewClient(httpClient, networkCfg.SubgraphURL, jsonAdapter)
		networks = append(networks, sync.NetworkJobs{
			Network:               network,
			CreatedContractsStart: networkCfg.CreatedContractsStart,
			CreatedTokensStart:    networkCfg.CreatedTokensStart,
			BurnedTokensStart:     networkCfg.BurnedTokensStart,
			TransferTokensStart:   networkCfg.TransferTokensStart,
			SaleContracts:         networkCfg.SaleContracts,
		})
	}
	if len(networks) == 0 {
		logger.FatalCtx(ctx, "No networks configured")
	}

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize the reconciliation engine
	resolver := metadata.NewResolver(cfg.Sync.MetadataDomain)
	engine := sync.NewEngine(sync.EngineConfig{
		PageLimit:      cfg.Sync.PageLimit,
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
	}, dataStore, clients, resolver, publisher, clock)

	// Seed job cursors and start the runner
	runner := sync.NewRunner(sync.RunnerConfig{
		Interval: cfg.Sync.Interval,
		Networks: networks,
	}, engine, dataStore, clock)

	if err := runner.EnsureJobCursors(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to seed job cursors", zap.Error(err))
	}

	errChan := make(chan error, 1)
	go func() {
		if err := runner.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the runner
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := runner.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sync worker stopped")
}
