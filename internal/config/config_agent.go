package config

import (
	"fmt"
	"time"
)

// AgentAdapter holds network settings used by the agent transport layer.
type AgentAdapter struct {
	// BaseURL is the sync server endpoint.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the externally supplied bearer token.
	Token string
}

// AgentLocalDB contains local database settings for the agent.
type AgentLocalDB struct {
	// Path is the SQLite database file path.
	Path string
}

// AgentStorage groups agent storage backend settings.
type AgentStorage struct {
	// LocalDB holds local database settings.
	LocalDB AgentLocalDB
}

// AgentWorkers contains agent background job settings.
type AgentWorkers struct {
	// SyncInterval defines how often the background sync job should run.
	SyncInterval time.Duration
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// Adapter contains outbound transport settings.
	Adapter AgentAdapter
	// Storage contains local storage settings.
	Storage AgentStorage
	// Workers contains background job settings.
	Workers AgentWorkers
}

// GetAgentConfig builds and validates an agent-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		Adapter: AgentAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: AgentStorage{
			LocalDB: AgentLocalDB{
				Path: cfg.Storage.LocalDB.Path,
			},
		},
		Workers: AgentWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	return agentCfg, agentCfg.validate()
}
