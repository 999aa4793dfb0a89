package service

import (
	"github.com/ananta-labs/tabsync/internal/adapter"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/store"
)

// AgentServices aggregates the agent-side service layer: the reconciliation
// engine and the background job driving it.
type AgentServices struct {
	SyncEngine
	Job SyncJob
}

// NewAgentServices wires the engine and its background job. The collector
// supplies snapshots, the transport talks to the sync server, and the token
// provider hooks in the external authentication subsystem.
func NewAgentServices(col SnapshotCollector, storages *store.AgentStorages, transport adapter.SyncTransport, token TokenProvider, log *logger.Logger) *AgentServices {
	engine := NewSyncEngine(col, storages.StateRepository, transport, NewSyncPlanner(log), token, log)
	return &AgentServices{
		SyncEngine: engine,
		Job:        NewSyncJob(engine, log),
	}
}
