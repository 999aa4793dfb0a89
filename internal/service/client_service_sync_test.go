package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananta-labs/tabsync/internal/adapter"
	"github.com/ananta-labs/tabsync/internal/checksum"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/mock"
	"github.com/ananta-labs/tabsync/internal/utils"
	"github.com/ananta-labs/tabsync/models"
)

const testDeviceID = "device-123"

func testToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("test-issuer", "acc-1", time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.String()
}

// newTestEngine wires the engine over gomock collaborators and the real
// planner, so the tests exercise classification and execution together.
func newTestEngine(t *testing.T, ctrl *gomock.Controller) (*syncEngine, *mock.MockSnapshotCollector, *mock.MockLocalStateRepository, *mock.MockSyncTransport) {
	t.Helper()

	col := mock.NewMockSnapshotCollector(ctrl)
	state := mock.NewMockLocalStateRepository(ctrl)
	transport := mock.NewMockSyncTransport(ctrl)

	log := logger.Nop()
	engine := NewSyncEngine(col, state, transport, NewSyncPlanner(log), StaticToken(testToken(t)), log).(*syncEngine)

	return engine, col, state, transport
}

func snapshotItem(t *testing.T, payload models.Payload) models.DataItem {
	t.Helper()
	sum, err := checksum.Compute(payload)
	require.NoError(t, err)
	return models.DataItem{Category: payload.PayloadCategory(), Payload: payload, Checksum: sum}
}

func TestSyncEngine_SmartSync_FirstRunPushesEverythingLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	pinned := snapshotItem(t, models.PinnedAppList{{Title: "Mail", URL: "https://mail.example", Order: 0}})
	device := snapshotItem(t, models.DeviceInfo{OS: "Linux", Browser: "Chrome", HardwareConcurrency: 8})
	snapshot := models.Snapshot{
		models.CategoryPinnedApps: pinned,
		models.CategoryDeviceInfo: device,
	}

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	state.EXPECT().GetSyncMetadata(ctx).Return(models.SyncMetadata{}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{}, nil)

	transport.EXPECT().Push(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session models.SyncSession, items []models.PushItem) (models.PushResponse, error) {
			assert.Equal(t, "acc-1", session.AccountKey)
			assert.Equal(t, testDeviceID, session.DeviceID)

			results := make([]models.PushResult, 0, len(items))
			for _, it := range items {
				assert.Zero(t, it.BaseVersion)
				results = append(results, models.PushResult{
					Category:    it.Category,
					Status:      models.PushStatusCreated,
					SyncVersion: 1,
					Checksum:    it.Checksum,
				})
			}
			return models.PushResponse{Results: results}, nil
		})

	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{
		models.CategoryPinnedApps: {Version: 1, Checksum: pinned.Checksum},
		models.CategoryDeviceInfo: {Version: 1, Checksum: device.Checksum},
	}).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Category{models.CategoryPinnedApps, models.CategoryDeviceInfo}, summary.Pushed)
	assert.Empty(t, summary.Pulled)
	assert.Empty(t, summary.Conflicts)
	assert.Empty(t, summary.Unchanged)
}

// A run right after a successful run changes nothing: the mirrored category
// classifies as unchanged, and the fingerprint push comes back "unchanged"
// from the server.
func TestSyncEngine_SmartSync_SecondRunIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	settings := snapshotItem(t, models.Settings{Theme: "dark", SearchEngine: "duck"})
	device := snapshotItem(t, models.DeviceInfo{OS: "Linux", Browser: "Chrome", HardwareConcurrency: 8})
	snapshot := models.Snapshot{
		models.CategorySettings:   settings,
		models.CategoryDeviceInfo: device,
	}

	metadata := models.SyncMetadata{
		models.CategorySettings:   {Version: 2, Checksum: settings.Checksum},
		models.CategoryDeviceInfo: {Version: 3, Checksum: device.Checksum},
	}

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	state.EXPECT().GetSyncMetadata(ctx).Return(metadata, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{States: []models.CategoryState{
			{Category: models.CategorySettings, Checksum: settings.Checksum, SyncVersion: 2},
			{Category: models.CategoryDeviceInfo, Checksum: device.Checksum, SyncVersion: 3},
		}, Length: 2}, nil)

	// only device_info goes to the server, and it comes back unchanged
	transport.EXPECT().Push(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.SyncSession, items []models.PushItem) (models.PushResponse, error) {
			require.Len(t, items, 1)
			assert.Equal(t, models.CategoryDeviceInfo, items[0].Category)
			assert.Equal(t, int64(3), items[0].BaseVersion)
			return models.PushResponse{Results: []models.PushResult{{
				Category:    models.CategoryDeviceInfo,
				Status:      models.PushStatusUnchanged,
				SyncVersion: 3,
				Checksum:    device.Checksum,
			}}}, nil
		})

	state.EXPECT().SetSyncMetadata(ctx, metadata).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Pushed)
	assert.Empty(t, summary.Pulled)
	assert.Empty(t, summary.Conflicts)
	assert.ElementsMatch(t, []models.Category{models.CategorySettings, models.CategoryDeviceInfo}, summary.Unchanged)
}

// A stale base version comes back as a conflict result; the server's value
// overwrites the local mirror and metadata records the server state.
func TestSyncEngine_SmartSync_ConflictServerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	localPinned := snapshotItem(t, models.PinnedAppList{{Title: "Local", URL: "https://local.example", Order: 0}})
	snapshot := models.Snapshot{models.CategoryPinnedApps: localPinned}

	serverPayload := json.RawMessage(`[{"title":"Remote","url":"https://remote.example","order":0}]`)

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	state.EXPECT().GetSyncMetadata(ctx).
		Return(models.SyncMetadata{models.CategoryPinnedApps: {Version: 3, Checksum: "older-local"}}, nil)

	// local differs from both the server and the last confirmed checksum,
	// so the engine pushes with the observed server version as base
	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{States: []models.CategoryState{
			{Category: models.CategoryPinnedApps, Checksum: "server-sum", SyncVersion: 4},
		}, Length: 1}, nil)

	transport.EXPECT().Push(ctx, gomock.Any(), gomock.Any()).
		Return(models.PushResponse{Results: []models.PushResult{{
			Category:      models.CategoryPinnedApps,
			Status:        models.PushStatusConflict,
			SyncVersion:   5,
			Checksum:      "server-sum-5",
			ServerPayload: serverPayload,
		}}}, nil)

	state.EXPECT().SetMirroredPayload(ctx, models.CategoryPinnedApps, serverPayload).Return(nil)
	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{
		models.CategoryPinnedApps: {Version: 5, Checksum: "server-sum-5"},
	}).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{models.CategoryPinnedApps}, summary.Conflicts)
	assert.Empty(t, summary.Pushed)
}

// When only the server moved since the last confirmed sync, the category is
// pulled and the local mirror overwritten wholesale.
func TestSyncEngine_SmartSync_PullServerMoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	localSettings := snapshotItem(t, models.Settings{Theme: "dark"})
	snapshot := models.Snapshot{models.CategorySettings: localSettings}

	remote := models.Settings{Theme: "light", SearchEngine: "duck"}
	remoteRaw, err := json.Marshal(remote)
	require.NoError(t, err)
	remoteSum, err := checksum.Compute(remote)
	require.NoError(t, err)

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	state.EXPECT().GetSyncMetadata(ctx).
		Return(models.SyncMetadata{models.CategorySettings: {Version: 2, Checksum: localSettings.Checksum}}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{States: []models.CategoryState{
			{Category: models.CategorySettings, Checksum: remoteSum, SyncVersion: 3},
		}, Length: 1}, nil)

	transport.EXPECT().Pull(ctx, gomock.Any(), []models.Category{models.CategorySettings}).
		Return(models.PullResponse{Items: []models.PullItem{{
			Category:    models.CategorySettings,
			Payload:     remoteRaw,
			SyncVersion: 3,
		}}, Length: 1}, nil)

	state.EXPECT().SetMirroredPayload(ctx, models.CategorySettings, json.RawMessage(remoteRaw)).Return(nil)
	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{
		models.CategorySettings: {Version: 3, Checksum: remoteSum},
	}).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{models.CategorySettings}, summary.Pulled)
	assert.Empty(t, summary.Pushed)
	assert.Empty(t, summary.Conflicts)
}

// A category with a confirmed metadata entry that the server no longer
// reports, and that this run did not push, was deleted remotely: its local
// mirror and metadata entry are cleared.
func TestSyncEngine_SmartSync_TombstoneSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	// the local mirror no longer yields the category (empty snapshot), the
	// server has no record, but metadata remembers a confirmed sync
	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(models.Snapshot{})
	state.EXPECT().GetSyncMetadata(ctx).
		Return(models.SyncMetadata{models.CategoryWorldClocks: {Version: 2, Checksum: "wc-sum"}}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{}, nil)

	state.EXPECT().DeleteMirroredPayload(ctx, models.CategoryWorldClocks).Return(nil)
	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{}).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Pushed)
	assert.Empty(t, summary.Pulled)
	assert.Empty(t, summary.Conflicts)
	assert.Empty(t, summary.Unchanged)
}

// A category deleted on the server but edited locally since the last sync
// wins the edit-vs-delete race: it is re-pushed as a new record, and the
// sweep must not clear what this run just pushed.
func TestSyncEngine_SmartSync_RepushedCategoryNotSwept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	clocks := snapshotItem(t, models.WorldClockList{{Label: "UTC", Timezone: "Etc/UTC", Order: 0}})
	snapshot := models.Snapshot{models.CategoryWorldClocks: clocks}

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	// the confirmed checksum differs from the snapshot: the local value
	// changed after the last sync
	state.EXPECT().GetSyncMetadata(ctx).
		Return(models.SyncMetadata{models.CategoryWorldClocks: {Version: 4, Checksum: "wc-before-edit"}}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{}, nil)

	transport.EXPECT().Push(ctx, gomock.Any(), gomock.Any()).
		Return(models.PushResponse{Results: []models.PushResult{{
			Category:    models.CategoryWorldClocks,
			Status:      models.PushStatusCreated,
			SyncVersion: 1,
			Checksum:    clocks.Checksum,
		}}}, nil)

	// no DeleteMirroredPayload expectation: the sweep must skip the category
	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{
		models.CategoryWorldClocks: {Version: 1, Checksum: clocks.Checksum},
	}).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{models.CategoryWorldClocks}, summary.Pushed)
}

// A category deleted on the server while the local copy is untouched since
// the last confirmed sync must not be pushed back into existence: the run
// clears the local mirror and the metadata entry instead.
func TestSyncEngine_SmartSync_RemoteDeletionClearsLocalCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	clocks := snapshotItem(t, models.WorldClockList{{Label: "UTC", Timezone: "Etc/UTC", Order: 0}})
	snapshot := models.Snapshot{models.CategoryWorldClocks: clocks}

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	// local checksum still matches the confirmed one, so the server's
	// missing record means a remote deletion, not a new local value
	state.EXPECT().GetSyncMetadata(ctx).
		Return(models.SyncMetadata{models.CategoryWorldClocks: {Version: 4, Checksum: clocks.Checksum}}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{}, nil)

	// no Push expectation: re-creating the record would undo the deletion
	state.EXPECT().DeleteMirroredPayload(ctx, models.CategoryWorldClocks).Return(nil)
	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{}).Return(nil)

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Pushed)
	assert.Empty(t, summary.Pulled)
	assert.Empty(t, summary.Conflicts)
	assert.Empty(t, summary.Unchanged)
}

// A host with no source for a derived category (headless agent) must not
// re-pull it every run: metadata matching the server state exactly means the
// category is already in sync, with no network or storage write.
func TestSyncEngine_SmartSync_ConfirmedDerivedCategoryNotRepulled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(models.Snapshot{})
	state.EXPECT().GetSyncMetadata(ctx).
		Return(models.SyncMetadata{models.CategoryBookmarks: {Version: 7, Checksum: "bm-sum"}}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{States: []models.CategoryState{
			{Category: models.CategoryBookmarks, Checksum: "bm-sum", SyncVersion: 7},
		}, Length: 1}, nil)

	// no Pull and no SetSyncMetadata expectation: nothing moved

	summary, err := engine.SmartSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Pushed)
	assert.Empty(t, summary.Pulled)
	assert.Empty(t, summary.Conflicts)
	assert.Equal(t, []models.Category{models.CategoryBookmarks}, summary.Unchanged)
}

func TestSyncEngine_SmartSync_NoTokenFailsBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	col := mock.NewMockSnapshotCollector(ctrl)
	state := mock.NewMockLocalStateRepository(ctrl)
	transport := mock.NewMockSyncTransport(ctrl)

	log := logger.Nop()
	engine := NewSyncEngine(col, state, transport, NewSyncPlanner(log), StaticToken(""), log)

	_, err := engine.SmartSync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestSyncEngine_SmartSync_StatusErrorAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(models.Snapshot{})
	state.EXPECT().GetSyncMetadata(ctx).Return(models.SyncMetadata{}, nil)

	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{}, adapter.ErrServer)

	_, err := engine.SmartSync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServer)
}

func TestSyncEngine_SmartSync_PushErrorKeepsEarlierPhases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine, col, state, transport := newTestEngine(t, ctrl)
	ctx := context.Background()

	settings := snapshotItem(t, models.Settings{Theme: "dark"})
	device := snapshotItem(t, models.DeviceInfo{OS: "Linux"})
	snapshot := models.Snapshot{
		models.CategorySettings:   settings,
		models.CategoryDeviceInfo: device,
	}

	state.EXPECT().EnsureDeviceID(ctx).Return(testDeviceID, nil)
	col.EXPECT().Collect(ctx).Return(snapshot)
	state.EXPECT().GetSyncMetadata(ctx).Return(models.SyncMetadata{}, nil)

	// settings is already in sync but not yet recorded in metadata, so the
	// classification phase persists before the push fails
	transport.EXPECT().Status(ctx, gomock.Any(), models.AllCategories()).
		Return(models.StatusResponse{States: []models.CategoryState{
			{Category: models.CategorySettings, Checksum: settings.Checksum, SyncVersion: 2},
		}, Length: 1}, nil)

	state.EXPECT().SetSyncMetadata(ctx, models.SyncMetadata{
		models.CategorySettings: {Version: 2, Checksum: settings.Checksum},
	}).Return(nil)

	transport.EXPECT().Push(ctx, gomock.Any(), gomock.Any()).
		Return(models.PushResponse{}, errors.New("network down"))

	summary, err := engine.SmartSync(ctx)
	require.Error(t, err)
	assert.Equal(t, []models.Category{models.CategorySettings}, summary.Unchanged)
}
