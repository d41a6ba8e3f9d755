package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"fitledger/internal/adapter"
	"fitledger/internal/config"
	"fitledger/internal/logger"
	"fitledger/internal/netprobe"
	"fitledger/internal/service"
	"fitledger/internal/store"

	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("fitledger")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store adapter")
	}

	probe := netprobe.New(cfg.Remote, log)
	services := service.NewServices(storages, remote, probe, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runInitialSeed(ctx, storages.Meta, services.SyncService, log)

	services.SyncJob.Start(ctx, cfg.Sync.InitialDelay, cfg.Sync.Interval)
	log.Info().
		Dur("interval", cfg.Sync.Interval).
		Dur("initial_delay", cfg.Sync.InitialDelay).
		Msg("background sync job started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	services.SyncJob.Stop()
	log.Info().Msg("fitledger stopped")
}

// runInitialSeed performs a one-time full pull on the very first start so a
// fresh install begins with the shared dataset instead of an empty database.
// The seed marker is only persisted after a fully successful pull, so a
// failed or offline first start retries on the next launch.
func runInitialSeed(ctx context.Context, meta store.MetaStorage, syncSvc service.SyncService, log *logger.Logger) {
	done, err := meta.SeedCompleted(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reading seed marker")
		return
	}
	if done {
		return
	}

	log.Info().Msg("first start, pulling initial dataset")

	result := syncSvc.PullChanges(ctx)
	if !result.Success {
		log.Warn().Strs("errors", result.Errors).Msg("initial pull incomplete, will retry on next start")
		return
	}

	if err := meta.MarkSeedCompleted(ctx); err != nil {
		log.Error().Err(err).Msg("persisting seed marker")
		return
	}

	log.Info().Int("pulled", result.Pulled).Msg("initial pull complete")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
