package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
)

type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewHistoryRepository(gdb *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     gdb,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *complaint.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *HistoryRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.HistoryEntry, error) {
	var historyModels []models.HistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Creation order matters: replaying the trail reproduces current status.
	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC, id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}

	entries := make([]*complaint.HistoryEntry, len(historyModels))
	for i, model := range historyModels {
		h, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = h
	}

	return entries, nil
}
