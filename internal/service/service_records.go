package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ananta-labs/tabsync/internal/checksum"
	"github.com/ananta-labs/tabsync/internal/logger"
	"github.com/ananta-labs/tabsync/internal/store"
	"github.com/ananta-labs/tabsync/models"
)

type recordService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

// NewRecordService constructs the standard [RecordService] over the record
// repository.
func NewRecordService(records store.RecordRepository, log *logger.Logger) RecordService {
	return &recordService{records: records, logger: log}
}

func (r *recordService) Status(ctx context.Context, accountKey string, categories []models.Category) (models.StatusResponse, error) {
	if err := validateCategories(categories); err != nil {
		return models.StatusResponse{}, err
	}

	states, err := r.records.GetStates(ctx, accountKey, categories)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("sync status: %w", err)
	}

	return models.StatusResponse{States: states, Length: len(states)}, nil
}

// Push applies each item independently:
//
//   - no record yet            -> insert at version 1 ("created");
//   - checksum already current -> nothing stored ("unchanged");
//   - base equals current      -> guarded update to base+1 ("updated");
//   - base is stale            -> "conflict" with the server's value.
//
// The stored checksum is recomputed server-side from the canonical payload,
// so a client that miscomputes checksums cannot poison the record.
func (r *recordService) Push(ctx context.Context, accountKey, deviceID string, items []models.PushItem) (models.PushResponse, error) {
	results := make([]models.PushResult, 0, len(items))
	for _, item := range items {
		if !item.Category.IsValid() {
			return models.PushResponse{}, fmt.Errorf("%w: %q", ErrUnknownCategory, item.Category)
		}

		result, err := r.pushOne(ctx, accountKey, deviceID, item)
		if err != nil {
			return models.PushResponse{}, err
		}
		results = append(results, result)
	}

	return models.PushResponse{Results: results}, nil
}

func (r *recordService) pushOne(ctx context.Context, accountKey, deviceID string, item models.PushItem) (models.PushResult, error) {
	canonical, err := checksum.Canonicalize(item.Payload)
	if err != nil {
		return models.PushResult{}, fmt.Errorf("canonicalize %s payload: %w", item.Category, err)
	}
	sum, err := checksum.Compute(item.Payload)
	if err != nil {
		return models.PushResult{}, fmt.Errorf("checksum %s payload: %w", item.Category, err)
	}
	if item.Checksum != "" && item.Checksum != sum {
		r.logger.Warn().
			Str("category", item.Category.String()).
			Str("device_id", deviceID).
			Msg("client checksum mismatch, using server-computed value")
	}

	current, err := r.records.GetRecord(ctx, accountKey, item.Category)
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		record := models.ServerRecord{
			AccountKey:  accountKey,
			Category:    item.Category,
			Checksum:    sum,
			SyncVersion: 1,
			Payload:     canonical,
			UpdatedBy:   deviceID,
			UpdatedAt:   time.Now(),
		}
		if err = r.records.InsertRecord(ctx, record); err != nil {
			return models.PushResult{}, fmt.Errorf("insert %s record: %w", item.Category, err)
		}
		return models.PushResult{
			Category:    item.Category,
			Status:      models.PushStatusCreated,
			SyncVersion: 1,
			Checksum:    sum,
		}, nil

	case err != nil:
		return models.PushResult{}, fmt.Errorf("load %s record: %w", item.Category, err)

	case current.Checksum == sum:
		return models.PushResult{
			Category:    item.Category,
			Status:      models.PushStatusUnchanged,
			SyncVersion: current.SyncVersion,
			Checksum:    current.Checksum,
		}, nil

	case current.SyncVersion == item.BaseVersion:
		record := models.ServerRecord{
			AccountKey:  accountKey,
			Category:    item.Category,
			Checksum:    sum,
			SyncVersion: item.BaseVersion + 1,
			Payload:     canonical,
			UpdatedBy:   deviceID,
			UpdatedAt:   time.Now(),
		}
		err = r.records.UpdateRecord(ctx, record, item.BaseVersion)
		if errors.Is(err, store.ErrVersionConflict) {
			// lost the race to another device between read and write
			return r.conflictResult(ctx, accountKey, item.Category)
		}
		if err != nil {
			return models.PushResult{}, fmt.Errorf("update %s record: %w", item.Category, err)
		}
		return models.PushResult{
			Category:    item.Category,
			Status:      models.PushStatusUpdated,
			SyncVersion: item.BaseVersion + 1,
			Checksum:    sum,
		}, nil

	default:
		return models.PushResult{
			Category:      item.Category,
			Status:        models.PushStatusConflict,
			SyncVersion:   current.SyncVersion,
			Checksum:      current.Checksum,
			ServerPayload: current.Payload,
		}, nil
	}
}

// conflictResult re-reads the record after a guarded update lost its race,
// so the conflict response carries the value that actually won.
func (r *recordService) conflictResult(ctx context.Context, accountKey string, category models.Category) (models.PushResult, error) {
	current, err := r.records.GetRecord(ctx, accountKey, category)
	if err != nil {
		return models.PushResult{}, fmt.Errorf("reload %s record after conflict: %w", category, err)
	}
	return models.PushResult{
		Category:      category,
		Status:        models.PushStatusConflict,
		SyncVersion:   current.SyncVersion,
		Checksum:      current.Checksum,
		ServerPayload: current.Payload,
	}, nil
}

func (r *recordService) Pull(ctx context.Context, accountKey string, categories []models.Category) (models.PullResponse, error) {
	if err := validateCategories(categories); err != nil {
		return models.PullResponse{}, err
	}

	records, err := r.records.GetRecords(ctx, accountKey, categories)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("sync pull: %w", err)
	}

	items := make([]models.PullItem, 0, len(records))
	for _, record := range records {
		items = append(items, models.PullItem{
			Category:    record.Category,
			Payload:     record.Payload,
			SyncVersion: record.SyncVersion,
		})
	}

	return models.PullResponse{Items: items, Length: len(items)}, nil
}

func validateCategories(categories []models.Category) error {
	for _, category := range categories {
		if !category.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
	}
	return nil
}
