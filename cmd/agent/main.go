package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ananta-labs/tabsync/internal/adapter"
	"github.com/ananta-labs/tabsync/internal/collector"
	"github.com/ananta-labs/tabsync/internal/config"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/service"
	"github.com/ananta-labs/tabsync/internal/store"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	log := logger.NewAgentLogger("sync-agent")
	printBuildInfo(log)

	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	storages, err := store.NewAgentStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("local storage init error")
	}

	// only the device fingerprint capability is available to the standalone
	// process; the browser-backed sources are absent outside a host session
	col := collector.NewCollector(storages.StateRepository, nil, nil, nil, collector.NewHostProbe(), log)

	transport := adapter.NewHTTPSyncTransport(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)

	services := service.NewAgentServices(col, storages, transport, service.StaticToken(cfg.Adapter.Token), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// one immediate run so a short-lived invocation still syncs
	if summary, err := services.SmartSync(ctx); err != nil {
		log.Error().Err(err).Msg("initial sync failed")
	} else {
		log.Info().
			Int("pushed", len(summary.Pushed)).
			Int("pulled", len(summary.Pulled)).
			Int("conflicts", len(summary.Conflicts)).
			Int("unchanged", len(summary.Unchanged)).
			Msg("initial sync finished")
	}

	services.Job.Start(ctx, cfg.Workers.SyncInterval)
	defer services.Job.Stop()

	<-ctx.Done()
	log.Info().Msg("agent shutting down")
}

func printBuildInfo(log *logger.Logger) {
	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Msg("starting sync agent")
}
