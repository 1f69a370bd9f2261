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

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewNoteRepository(gdb *gorm.DB) *NoteRepository {
	return &NoteRepository{
		db:     gdb,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *NoteRepository) Save(ctx context.Context, note *complaint.Note) error {
	model := r.mapper.NoteToModel(note)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	return note.SetID(model.ID)
}

func (r *NoteRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Note, error) {
	var noteModels []models.NoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC, id ASC").
		Find(&noteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]*complaint.Note, len(noteModels))
	for i, model := range noteModels {
		n, err := r.mapper.NoteToDomain(&model)
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}

	return notes, nil
}
