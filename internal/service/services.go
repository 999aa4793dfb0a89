package service

import (
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/store"
)

// Services aggregates the server-side service layer.
type Services struct {
	AuthService
	RecordService
}

// NewServices wires the server services over the server storages.
func NewServices(storages *store.Storages, authCfg AuthConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.AccountRepository, authCfg, log),
		RecordService: NewRecordService(storages.RecordRepository, log),
	}
}
