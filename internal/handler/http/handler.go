// Package http exposes the sync server's JSON/HTTP surface: account
// registration and login, and the three sync operations (status, push,
// pull) behind bearer-token authentication.
package http

import (
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/service"
)

// Handler bundles the service layer behind the HTTP routes.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs the HTTP handler over the wired services.
func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	return &Handler{services: services, logger: log}
}
