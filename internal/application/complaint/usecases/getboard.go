package usecases

import (
	"context"

	"fieldserve/internal/application/complaint/dto"
	"fieldserve/internal/domain/board"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetBoardQuery struct {
	Actor identity.Actor
}

type GetBoardResult struct {
	Columns map[string][]dto.ComplaintDTO `json:"columns"`
	Total   int                           `json:"total"`
}

// GetBoardUseCase loads every complaint visible to the actor and projects
// them into status columns. The board is rebuilt from scratch on each load;
// there is no stored board state.
type GetBoardUseCase struct {
	complaintRepo  complaint.Repository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	logger         logger.Interface
}

func NewGetBoardUseCase(
	complaintRepo complaint.Repository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	logger logger.Interface,
) *GetBoardUseCase {
	return &GetBoardUseCase{
		complaintRepo:  complaintRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *GetBoardUseCase) Execute(ctx context.Context, query GetBoardQuery) (*GetBoardResult, error) {
	scope, err := scopeForActor(query.Actor, uc.technicians, uc.assignmentRepo)
	if err != nil {
		return nil, err
	}

	filter := &complaint.Filter{Page: 1, PageSize: boardPageSize}
	if err := scope.ApplyToFilter(ctx, filter); err != nil {
		return nil, err
	}

	var complaints []*complaint.Complaint
	if filter.ComplaintIDs == nil || len(filter.ComplaintIDs) > 0 {
		complaints, _, err = uc.complaintRepo.List(ctx, *filter)
		if err != nil {
			uc.logger.Errorw("failed to load complaints for board", "error", err)
			return nil, errors.NewInternalError("failed to load board")
		}
	}

	projection := board.Project(complaints)

	columns := make(map[string][]dto.ComplaintDTO, len(projection))
	for status, col := range projection {
		columns[status.String()] = dto.FromComplaints(col)
	}

	return &GetBoardResult{
		Columns: columns,
		Total:   board.Count(projection),
	}, nil
}

// boardPageSize caps how many complaints a single board load pulls. Boards
// are a working view of live complaints, not an archive browser.
const boardPageSize = 500
