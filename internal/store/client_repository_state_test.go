package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ananta-labs/tabsync/internal/config"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/models"
)

// newTestStateRepo opens an in-memory SQLite database with the real schema.
func newTestStateRepo(t *testing.T) LocalStateRepository {
	t.Helper()

	log := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.AgentLocalDB{Path: ":memory:"}, log)
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewLocalStateRepository(db, log)
}

func TestLocalState_MirroredPayloadRoundTrip(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"theme":"dark","clock_format_24h":true}`)

	if err := repo.SetMirroredPayload(ctx, models.CategorySettings, payload); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := repo.GetMirroredPayload(ctx, models.CategorySettings)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected %s, got %s", payload, got)
	}
}

func TestLocalState_MirroredPayloadOverwriteIsWholesale(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	if err := repo.SetMirroredPayload(ctx, models.CategorySettings, json.RawMessage(`{"theme":"dark"}`)); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := repo.SetMirroredPayload(ctx, models.CategorySettings, json.RawMessage(`{"search_engine":"duck"}`)); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	got, err := repo.GetMirroredPayload(ctx, models.CategorySettings)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"search_engine":"duck"}` {
		t.Errorf("expected full replacement, got %s", got)
	}
}

func TestLocalState_MissingPayload(t *testing.T) {
	repo := newTestStateRepo(t)

	_, err := repo.GetMirroredPayload(context.Background(), models.CategoryWorldClocks)
	if !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestLocalState_DeleteMirroredPayload(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	if err := repo.SetMirroredPayload(ctx, models.CategoryPinnedApps, json.RawMessage(`[]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := repo.DeleteMirroredPayload(ctx, models.CategoryPinnedApps); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.GetMirroredPayload(ctx, models.CategoryPinnedApps); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound after delete, got %v", err)
	}

	// deleting an absent key is a no-op
	if err := repo.DeleteMirroredPayload(ctx, models.CategoryPinnedApps); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestLocalState_EnsureDeviceIDIsStable(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	first, err := repo.EnsureDeviceID(ctx)
	if err != nil {
		t.Fatalf("first EnsureDeviceID failed: %v", err)
	}
	if first == "" {
		t.Fatal("expected a generated device id")
	}

	second, err := repo.EnsureDeviceID(ctx)
	if err != nil {
		t.Fatalf("second EnsureDeviceID failed: %v", err)
	}
	if first != second {
		t.Errorf("device id must be stable: %s != %s", first, second)
	}
}

func TestLocalState_SyncMetadataRoundTrip(t *testing.T) {
	repo := newTestStateRepo(t)
	ctx := context.Background()

	metadata, err := repo.GetSyncMetadata(ctx)
	if err != nil {
		t.Fatalf("get on empty store failed: %v", err)
	}
	if len(metadata) != 0 {
		t.Fatalf("expected empty metadata, got %d entries", len(metadata))
	}

	want := models.SyncMetadata{
		models.CategorySettings:   {Version: 3, Checksum: "sum-a"},
		models.CategoryDeviceInfo: {Version: 1, Checksum: "sum-b"},
	}
	if err := repo.SetSyncMetadata(ctx, want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := repo.GetSyncMetadata(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	if got[models.CategorySettings] != want[models.CategorySettings] {
		t.Errorf("settings state mismatch: %+v", got[models.CategorySettings])
	}
}

// Corrupt metadata must not brick the agent: the engine re-confirms every
// category against the server on the next run.
func TestLocalState_CorruptSyncMetadataStartsEmpty(t *testing.T) {
	repo := newTestStateRepo(t).(*localStateRepository)
	ctx := context.Background()

	if err := repo.setValue(ctx, localStateSyncMetadataKey, []byte(`{broken`)); err != nil {
		t.Fatalf("failed to plant corrupt metadata: %v", err)
	}

	metadata, err := repo.GetSyncMetadata(ctx)
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(metadata) != 0 {
		t.Fatalf("expected empty metadata after corruption, got %d entries", len(metadata))
	}
}
