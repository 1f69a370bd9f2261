package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/identity"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
	"fieldserve/internal/shared/errors"
)

// TechnicianDirectory is the gorm-backed read side of the technician roster.
type TechnicianDirectory struct {
	db *gorm.DB
}

func NewTechnicianDirectory(gdb *gorm.DB) *TechnicianDirectory {
	return &TechnicianDirectory{db: gdb}
}

func (r *TechnicianDirectory) GetByID(ctx context.Context, id uint) (*identity.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return technicianToDomain(&model), nil
}

func (r *TechnicianDirectory) GetByActorID(ctx context.Context, actorID uint) (*identity.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("actor_id = ?", actorID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return technicianToDomain(&model), nil
}

func technicianToDomain(model *models.TechnicianModel) *identity.Technician {
	return &identity.Technician{
		ID:       model.ID,
		ActorID:  model.ActorID,
		DealerID: model.DealerID,
		Name:     model.Name,
		Phone:    model.Phone,
		Active:   model.Active,
	}
}
