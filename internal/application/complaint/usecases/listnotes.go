package usecases

import (
	"context"

	"fieldserve/internal/application/complaint/dto"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type ListNotesQuery struct {
	Actor       identity.Actor
	ComplaintID uint
}

type ListNotesUseCase struct {
	complaintRepo  complaint.Repository
	noteRepo       complaint.NoteRepository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	logger         logger.Interface
}

func NewListNotesUseCase(
	complaintRepo complaint.Repository,
	noteRepo complaint.NoteRepository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	logger logger.Interface,
) *ListNotesUseCase {
	return &ListNotesUseCase{
		complaintRepo:  complaintRepo,
		noteRepo:       noteRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListNotesUseCase) Execute(ctx context.Context, query ListNotesQuery) ([]dto.NoteDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint id is required")
	}

	scope, err := scopeForActor(query.Actor, uc.technicians, uc.assignmentRepo)
	if err != nil {
		return nil, err
	}

	if _, err := loadVisibleComplaint(ctx, uc.complaintRepo, scope, query.ComplaintID); err != nil {
		return nil, err
	}

	notes, err := uc.noteRepo.ListByComplaintID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to list complaint notes",
			"complaint_id", query.ComplaintID,
			"error", err)
		return nil, errors.NewInternalError("failed to list complaint notes")
	}

	return dto.FromNotes(notes), nil
}
