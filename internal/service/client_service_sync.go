package service

import (
	"context"
	"fmt"

	"github.com/ananta-labs/tabsync/internal/adapter"
	"github.com/ananta-labs/tabsync/internal/checksum"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/store"
	"github.com/ananta-labs/tabsync/internal/utils"
	"github.com/ananta-labs/tabsync/models"
)

// syncEngine drives one reconciliation run: snapshot, one status probe, at
// most one batched push, at most one batched pull, a tombstone sweep, and a
// metadata persist after every completed phase. A run that fails partway
// keeps the metadata of the phases that did complete, so the next run
// resumes from accurate state.
type syncEngine struct {
	collector SnapshotCollector
	state     store.LocalStateRepository
	transport adapter.SyncTransport
	planner   SyncPlanner
	token     TokenProvider
	logger    *logger.Logger
}

// NewSyncEngine wires the reconciliation engine from its collaborators.
func NewSyncEngine(col SnapshotCollector, state store.LocalStateRepository, transport adapter.SyncTransport, planner SyncPlanner, token TokenProvider, log *logger.Logger) SyncEngine {
	return &syncEngine{
		collector: col,
		state:     state,
		transport: transport,
		planner:   planner,
		token:     token,
		logger:    log,
	}
}

func (s *syncEngine) SmartSync(ctx context.Context) (models.SyncSummary, error) {
	var summary models.SyncSummary

	session, err := s.openSession(ctx)
	if err != nil {
		return summary, err
	}

	snapshot := s.collector.Collect(ctx)

	preRun, err := s.state.GetSyncMetadata(ctx)
	if err != nil {
		return summary, fmt.Errorf("load sync metadata: %w", err)
	}
	meta := preRun.Clone()

	status, err := s.transport.Status(ctx, session, models.AllCategories())
	if err != nil {
		return summary, fmt.Errorf("sync status: %w", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, snapshot, status.States, meta)
	if err != nil {
		return summary, err
	}

	// categories already in sync: confirm the server state in metadata
	// without any network write
	metaChanged := false
	for _, state := range plan.Unchanged {
		summary.Unchanged = append(summary.Unchanged, state.Category)
		next := models.SyncState{Version: state.SyncVersion, Checksum: state.Checksum}
		if meta[state.Category] != next {
			meta[state.Category] = next
			metaChanged = true
		}
	}
	if metaChanged {
		if err = s.persistMetadata(ctx, meta); err != nil {
			return summary, err
		}
	}

	pushed := make(map[models.Category]bool, len(plan.Push))
	if len(plan.Push) > 0 {
		if err = s.runPushPhase(ctx, session, snapshot, plan.Push, meta, &summary, pushed); err != nil {
			return summary, err
		}
	}

	pull := make([]models.Category, 0, len(plan.Pull))
	for _, category := range plan.Pull {
		if !pushed[category] {
			pull = append(pull, category)
		}
	}
	if len(pull) > 0 {
		if err = s.runPullPhase(ctx, session, pull, meta, &summary); err != nil {
			return summary, err
		}
	}

	if s.sweepTombstones(ctx, preRun, status.States, pushed, meta) {
		if err = s.persistMetadata(ctx, meta); err != nil {
			return summary, err
		}
	}

	s.logger.Info().
		Int("pushed", len(summary.Pushed)).
		Int("pulled", len(summary.Pulled)).
		Int("conflicts", len(summary.Conflicts)).
		Int("unchanged", len(summary.Unchanged)).
		Msg("sync run complete")

	return summary, nil
}

// openSession builds the per-run identity. The token check happens before
// any network access; a missing or unparsable token means the external
// authentication subsystem has not produced credentials yet.
func (s *syncEngine) openSession(ctx context.Context) (models.SyncSession, error) {
	token, err := s.token(ctx)
	if err != nil {
		return models.SyncSession{}, fmt.Errorf("%w: %w", ErrAuthenticationRequired, err)
	}
	if token == "" {
		return models.SyncSession{}, ErrAuthenticationRequired
	}

	accountKey, err := utils.ParseAccountKeyFromJWT(token)
	if err != nil {
		return models.SyncSession{}, fmt.Errorf("%w: %w", ErrAuthenticationRequired, err)
	}

	deviceID, err := s.state.EnsureDeviceID(ctx)
	if err != nil {
		return models.SyncSession{}, fmt.Errorf("ensure device id: %w", err)
	}

	return models.SyncSession{AccountKey: accountKey, DeviceID: deviceID, Token: token}, nil
}

// runPushPhase executes the single batched push and applies every result to
// metadata. Conflicts are resolved server-wins: the mirrored local value is
// overwritten with the server's payload so the next snapshot reads it back.
func (s *syncEngine) runPushPhase(ctx context.Context, session models.SyncSession, snapshot models.Snapshot, planned []models.PlannedPush, meta models.SyncMetadata, summary *models.SyncSummary, pushed map[models.Category]bool) error {
	items := make([]models.PushItem, 0, len(planned))
	for _, p := range planned {
		item, ok := snapshot[p.Category]
		if !ok {
			continue
		}
		items = append(items, models.PushItem{
			Category:    p.Category,
			Payload:     item.Payload,
			Checksum:    item.Checksum,
			BaseVersion: p.BaseVersion,
		})
	}
	if len(items) == 0 {
		return nil
	}

	resp, err := s.transport.Push(ctx, session, items)
	if err != nil {
		return fmt.Errorf("sync push: %w", err)
	}

	for _, res := range resp.Results {
		pushed[res.Category] = true
		meta[res.Category] = models.SyncState{Version: res.SyncVersion, Checksum: res.Checksum}

		switch res.Status {
		case models.PushStatusCreated, models.PushStatusUpdated:
			summary.Pushed = append(summary.Pushed, res.Category)
		case models.PushStatusUnchanged:
			summary.Unchanged = append(summary.Unchanged, res.Category)
		case models.PushStatusConflict:
			summary.Conflicts = append(summary.Conflicts, res.Category)
			if res.Category.IsMirrored() && len(res.ServerPayload) > 0 {
				if _, decErr := models.DecodePayload(res.Category, res.ServerPayload); decErr != nil {
					return fmt.Errorf("conflict payload for %s: %w: %w", res.Category, adapter.ErrServer, decErr)
				}
				if err = s.state.SetMirroredPayload(ctx, res.Category, res.ServerPayload); err != nil {
					return fmt.Errorf("apply conflict payload for %s: %w", res.Category, err)
				}
			}
		default:
			s.logger.Warn().
				Str("category", res.Category.String()).
				Str("status", string(res.Status)).
				Msg("unknown push status, metadata updated anyway")
		}
	}

	return s.persistMetadata(ctx, meta)
}

// runPullPhase executes the single batched pull and applies every returned
// value: mirrored categories are overwritten wholesale in local storage, and
// metadata records the server version with a locally computed checksum.
func (s *syncEngine) runPullPhase(ctx context.Context, session models.SyncSession, categories []models.Category, meta models.SyncMetadata, summary *models.SyncSummary) error {
	resp, err := s.transport.Pull(ctx, session, categories)
	if err != nil {
		return fmt.Errorf("sync pull: %w", err)
	}

	for _, item := range resp.Items {
		payload, err := models.DecodePayload(item.Category, item.Payload)
		if err != nil {
			return fmt.Errorf("pull payload for %s: %w: %w", item.Category, adapter.ErrServer, err)
		}

		sum, err := checksum.Compute(payload)
		if err != nil {
			return fmt.Errorf("checksum pulled %s: %w", item.Category, err)
		}

		if item.Category.IsMirrored() {
			if err = s.state.SetMirroredPayload(ctx, item.Category, item.Payload); err != nil {
				return fmt.Errorf("apply pulled payload for %s: %w", item.Category, err)
			}
		}

		meta[item.Category] = models.SyncState{Version: item.SyncVersion, Checksum: sum}
		summary.Pulled = append(summary.Pulled, item.Category)
	}

	return s.persistMetadata(ctx, meta)
}

// sweepTombstones clears mirrored categories the server no longer knows
// about: an entry existed in the pre-run metadata, the status response did
// not list it, and this run did not just push it. Reports whether meta was
// modified.
func (s *syncEngine) sweepTombstones(ctx context.Context, preRun models.SyncMetadata, serverStates []models.CategoryState, pushed map[models.Category]bool, meta models.SyncMetadata) bool {
	onServer := make(map[models.Category]bool, len(serverStates))
	for _, state := range serverStates {
		onServer[state.Category] = true
	}

	changed := false
	for _, category := range models.MirroredCategories() {
		if _, hadMeta := preRun[category]; !hadMeta {
			continue
		}
		if onServer[category] || pushed[category] {
			continue
		}

		if err := s.state.DeleteMirroredPayload(ctx, category); err != nil {
			s.logger.Error().Err(err).
				Str("category", category.String()).
				Msg("failed to clear tombstoned category")
			continue
		}
		delete(meta, category)
		changed = true

		s.logger.Info().
			Str("category", category.String()).
			Msg("cleared category deleted on server")
	}

	return changed
}

func (s *syncEngine) persistMetadata(ctx context.Context, meta models.SyncMetadata) error {
	if err := s.state.SetSyncMetadata(ctx, meta); err != nil {
		return fmt.Errorf("persist sync metadata: %w", err)
	}
	return nil
}
