package usecases

import (
	"context"

	"fieldserve/internal/application/complaint/dto"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetHistoryQuery struct {
	Actor       identity.Actor
	ComplaintID uint
}

type GetHistoryUseCase struct {
	complaintRepo  complaint.Repository
	historyRepo    complaint.HistoryRepository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	logger         logger.Interface
}

func NewGetHistoryUseCase(
	complaintRepo complaint.Repository,
	historyRepo complaint.HistoryRepository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		complaintRepo:  complaintRepo,
		historyRepo:    historyRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, query GetHistoryQuery) ([]dto.HistoryEntryDTO, error) {
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

	entries, err := uc.historyRepo.ListByComplaintID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to list complaint history",
			"complaint_id", query.ComplaintID,
			"error", err)
		return nil, errors.NewInternalError("failed to list complaint history")
	}

	return dto.FromHistoryEntries(entries), nil
}
