package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/mock"
	"github.com/ananta-labs/tabsync/models"
)

func TestSyncJob_StartTriggersEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock.NewMockSyncEngine(ctrl)
	job := NewSyncJob(engine, logger.Nop())

	synced := make(chan struct{}, 1)
	engine.EXPECT().SmartSync(gomock.Any()).
		DoAndReturn(func(context.Context) (models.SyncSummary, error) {
			select {
			case synced <- struct{}{}:
			default:
			}
			return models.SyncSummary{}, nil
		}).MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("engine was never triggered")
	}
}

func TestSyncJob_StopTerminatesWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock.NewMockSyncEngine(ctrl)
	engine.EXPECT().SmartSync(gomock.Any()).Return(models.SyncSummary{}, nil).AnyTimes()

	job := NewSyncJob(engine, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	// a second Stop on an already stopped job is a no-op
	job.Stop()
}

// Missing credentials are routine at startup: the job keeps ticking and
// reports nothing but a debug line.
func TestSyncJob_AuthRequiredIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock.NewMockSyncEngine(ctrl)
	job := NewSyncJob(engine, logger.Nop())

	calls := make(chan struct{}, 2)
	engine.EXPECT().SmartSync(gomock.Any()).
		DoAndReturn(func(context.Context) (models.SyncSummary, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return models.SyncSummary{}, ErrAuthenticationRequired
		}).MinTimes(2)

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("job stopped ticking after auth failure")
		}
	}
}

func TestSyncJob_ContextCancelStopsWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := mock.NewMockSyncEngine(ctrl)
	engine.EXPECT().SmartSync(gomock.Any()).Return(models.SyncSummary{}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewSyncJob(engine, logger.Nop())
	job.Start(ctx, 5*time.Millisecond)

	cancel()

	// Stop must still return promptly even though the worker already exited
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}
