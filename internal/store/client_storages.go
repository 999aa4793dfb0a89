package store

import (
	"context"
	"fmt"

	"github.com/ananta-labs/tabsync/internal/config"
	"github.com/ananta-labs/tabsync/internal/logger"
)

// AgentStorages groups all agent-side storage repositories into a single
// value that can be passed around the service layer.
type AgentStorages struct {
	// StateRepository is the SQLite-backed key-value store holding the
	// mirrored category payloads, the device identifier, and the sync
	// metadata record.
	StateRepository LocalStateRepository
}

// NewAgentStorages initialises the agent storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.LocalDB.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [LocalDB.Migrate].
//  3. Constructs and returns an [AgentStorages] value wired to a fresh
//     [LocalStateRepository].
func NewAgentStorages(cfg config.AgentStorage, log *logger.Logger) (*AgentStorages, error) {
	log.Info().Msg("creating agent storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.LocalDB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &AgentStorages{
		StateRepository: NewLocalStateRepository(db, log),
	}, nil
}
