package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validAgentConfig() *AgentConfig {
	return &AgentConfig{
		Adapter: AgentAdapter{
			BaseURL:        "https://sync.example.com",
			RequestTimeout: 15 * time.Second,
			Token:          "bearer-token",
		},
		Storage: AgentStorage{
			LocalDB: AgentLocalDB{Path: "/var/lib/tabsync/state.db"},
		},
		Workers: AgentWorkers{SyncInterval: 5 * time.Minute},
	}
}

func validServerConfig() *ServerConfig {
	return &ServerConfig{
		App: App{
			SecretHashKey: "hash_secret",
			TokenSignKey:  "jwt_secret",
			TokenIssuer:   "tabsync",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/tabsync"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestAgentConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *AgentConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(*AgentConfig) {},
		},
		{
			name:    "missing local db path",
			mutate:  func(cfg *AgentConfig) { cfg.Storage.LocalDB.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing base url",
			mutate:  func(cfg *AgentConfig) { cfg.Adapter.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *AgentConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(cfg *AgentConfig) { cfg.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			// the engine checks the token at run time, not at startup, so an
			// unauthenticated agent can idle until credentials arrive
			name:   "missing token is allowed",
			mutate: func(cfg *AgentConfig) { cfg.Adapter.Token = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAgentConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(*ServerConfig) {},
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *ServerConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *ServerConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing token issuer",
			mutate:  func(cfg *ServerConfig) { cfg.App.TokenIssuer = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *ServerConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing secret hash key",
			mutate:  func(cfg *ServerConfig) { cfg.App.SecretHashKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
