package service

import (
	"context"
	"fmt"

	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/models"
)

// syncPlanner classifies categories for one reconciliation run. It holds no
// state beyond a logger and performs no I/O, so a single instance can serve
// any number of runs.
type syncPlanner struct {
	logger *logger.Logger
}

// NewSyncPlanner returns the standard [SyncPlanner].
func NewSyncPlanner(log *logger.Logger) SyncPlanner {
	return &syncPlanner{logger: log}
}

// BuildSyncPlan assigns every category to exactly one action:
//
//   - device_info present locally is always pushed, with the server's
//     version as base (0 if the server has none);
//   - local only            -> push with base version 0, unless a mirrored
//     category still matches the last confirmed checksum: then the server
//     deleted it and the tombstone sweep clears the local copy instead;
//   - server only           -> pull, unless a derived category's metadata
//     already records exactly the server state: then nothing moved and the
//     category is unchanged;
//   - both, equal checksums -> unchanged;
//   - both, differing, local still matches the last confirmed checksum
//     -> pull (only the server moved);
//   - both, differing otherwise -> push with the server's version as base.
func (p *syncPlanner) BuildSyncPlan(ctx context.Context, snapshot models.Snapshot, serverStates []models.CategoryState, metadata models.SyncMetadata) (models.SyncPlan, error) {
	server := make(map[models.Category]models.CategoryState, len(serverStates))
	for _, state := range serverStates {
		server[state.Category] = state
	}

	var plan models.SyncPlan
	for _, category := range models.AllCategories() {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, fmt.Errorf("building sync plan: %w", err)
		}

		item, localExists := snapshot[category]
		serverState, serverExists := server[category]
		lastKnown, hasLastKnown := metadata[category]

		switch {
		case !localExists && !serverExists:
			// nothing to reconcile
		case category == models.CategoryDeviceInfo && localExists:
			base := int64(0)
			if serverExists {
				base = serverState.SyncVersion
			}
			plan.Push = append(plan.Push, models.PlannedPush{Category: category, BaseVersion: base})
		case localExists && !serverExists:
			if category.IsMirrored() && hasLastKnown && item.Checksum == lastKnown.Checksum {
				// the server dropped the record and the local copy has not
				// been edited since the last confirmed sync: this is a remote
				// deletion, left for the tombstone sweep rather than pushed
				// back into existence
				continue
			}
			plan.Push = append(plan.Push, models.PlannedPush{Category: category, BaseVersion: 0})
		case !localExists:
			if !category.IsMirrored() && hasLastKnown &&
				lastKnown.Version == serverState.SyncVersion && lastKnown.Checksum == serverState.Checksum {
				// a derived category the host cannot produce stays in sync as
				// long as metadata matches the server state; mirrored
				// categories are still pulled to restore the local copy
				plan.Unchanged = append(plan.Unchanged, serverState)
				continue
			}
			plan.Pull = append(plan.Pull, category)
		case item.Checksum == serverState.Checksum:
			plan.Unchanged = append(plan.Unchanged, serverState)
		case hasLastKnown && item.Checksum == lastKnown.Checksum:
			// local is still at the last confirmed value, so the server's
			// copy is strictly newer
			plan.Pull = append(plan.Pull, category)
		default:
			plan.Push = append(plan.Push, models.PlannedPush{Category: category, BaseVersion: serverState.SyncVersion})
		}
	}

	p.logger.Debug().
		Int("push", len(plan.Push)).
		Int("pull", len(plan.Pull)).
		Int("unchanged", len(plan.Unchanged)).
		Msg("sync plan built")

	return plan, nil
}
