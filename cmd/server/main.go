package main

import (
	"context"

	"github.com/ananta-labs/tabsync/internal/config"
	handler "github.com/ananta-labs/tabsync/internal/handler/http"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/server"
	"github.com/ananta-labs/tabsync/internal/service"
	"github.com/ananta-labs/tabsync/internal/store"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	log := logger.NewLogger("sync-server")
	printBuildInfo(log)

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init error")
	}

	services := service.NewServices(storages, service.AuthConfig{
		SecretHashKey: cfg.App.SecretHashKey,
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
	}, log)

	h := handler.NewHandler(services, log)

	srv := server.New(cfg.Server, h.Routes(), log)
	if err := srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func printBuildInfo(log *logger.Logger) {
	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Msg("starting sync server")
}
