package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ananta-labs/tabsync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// syncJob periodically triggers the engine. Runs are serialized: the ticker
// fires are consumed one at a time on a single goroutine, so two
// reconciliation runs can never overlap.
type syncJob struct {
	engine SyncEngine
	logger *logger.Logger

	mu     sync.Mutex
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSyncJob returns a [SyncJob] driving the given engine.
func NewSyncJob(engine SyncEngine, log *logger.Logger) SyncJob {
	return &syncJob{engine: engine, logger: log}
}

func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	j.stopCh = make(chan struct{})
	j.doneCh = make(chan struct{})
	stopCh, doneCh := j.stopCh, j.doneCh
	j.mu.Unlock()

	go j.run(ctx, interval, stopCh, doneCh)
}

func (j *syncJob) run(ctx context.Context, interval time.Duration, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", interval).Msg("background sync started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("background sync stopped: context done")
			return
		case <-stopCh:
			j.logger.Info().Msg("background sync stopped")
			return
		case <-ticker.C:
			j.syncOnce(ctx)
		}
	}
}

func (j *syncJob) syncOnce(ctx context.Context) {
	summary, err := j.engine.SmartSync(ctx)
	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		// not signed in yet, try again next tick
		j.logger.Debug().Msg("background sync skipped: no credentials")
	case err != nil:
		j.logger.Error().Err(err).Msg("background sync failed")
	default:
		j.logger.Info().
			Int("pushed", len(summary.Pushed)).
			Int("pulled", len(summary.Pulled)).
			Int("conflicts", len(summary.Conflicts)).
			Msg("background sync finished")
	}
}

func (j *syncJob) Stop() {
	j.mu.Lock()
	stopCh, doneCh := j.stopCh, j.doneCh
	j.stopCh, j.doneCh = nil, nil
	j.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	<-doneCh
}
