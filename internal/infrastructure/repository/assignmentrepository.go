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

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewAssignmentRepository(gdb *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     gdb,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, a *complaint.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	return a.SetID(model.ID)
}

// DeactivateActive retires every active assignment of the complaint and
// reports how many rows it touched, so the caller can tell a fresh
// assignment from a reassignment.
func (r *AssignmentRepository) DeactivateActive(ctx context.Context, complaintID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssignmentModel{}).
		Where("complaint_id = ? AND is_active = ?", complaintID, true).
		Update("is_active", false)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate assignments: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *AssignmentRepository) GetActiveByComplaintID(ctx context.Context, complaintID uint) (*complaint.Assignment, error) {
	var model models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("complaint_id = ? AND is_active = ?", complaintID, true).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

func (r *AssignmentRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC, id ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*complaint.Assignment, len(assignmentModels))
	for i, model := range assignmentModels {
		a, err := r.mapper.AssignmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		assignments[i] = a
	}

	return assignments, nil
}

func (r *AssignmentRepository) ActiveComplaintIDsByTechnician(ctx context.Context, technicianID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AssignmentModel{}).
		Where("technician_id = ? AND is_active = ?", technicianID, true).
		Pluck("complaint_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned complaint ids: %w", err)
	}

	return ids, nil
}
