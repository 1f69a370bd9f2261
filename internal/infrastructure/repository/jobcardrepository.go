package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
	"fieldserve/internal/shared/errors"
)

type JobCardRepository struct {
	db     *gorm.DB
	mapper mappers.JobCardMapper
}

func NewJobCardRepository(gdb *gorm.DB) *JobCardRepository {
	return &JobCardRepository{
		db:     gdb,
		mapper: mappers.NewJobCardMapper(),
	}
}

func (r *JobCardRepository) Save(ctx context.Context, card *jobcard.JobCard) error {
	model := r.mapper.ToModel(card)
	tx := db.GetTxFromContext(ctx, r.db)

	// The unique index on complaint_id backstops the idempotent create; the
	// duplicate error surfaces to the use case untranslated so it can hand
	// back the winning card.
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job card: %w", err)
	}

	return card.SetID(model.ID)
}

func (r *JobCardRepository) Update(ctx context.Context, card *jobcard.JobCard) error {
	model := r.mapper.ToModel(card)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.JobCardModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"work_performed":       model.WorkPerformed,
			"parts_used":           model.PartsUsed,
			"resolution_notes":     model.ResolutionNotes,
			"arrived_at":           model.ArrivedAt,
			"departed_at":          model.DepartedAt,
			"technician_signature": model.TechnicianSignature,
			"customer_signature":   model.CustomerSignature,
			"status":               model.Status,
			"updated_at":           model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("job card not found")
	}

	return nil
}

func (r *JobCardRepository) GetByID(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	var model models.JobCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("job card not found")
		}
		return nil, fmt.Errorf("failed to find job card: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *JobCardRepository) GetByComplaintID(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
	var model models.JobCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("complaint_id = ?", complaintID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("job card not found")
		}
		return nil, fmt.Errorf("failed to find job card: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
