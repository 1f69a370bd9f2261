package usecases

import (
	"context"

	"fieldserve/internal/application/complaint/dto"
	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type ListComplaintsQuery struct {
	Actor     identity.Actor
	Status    string
	Priority  string
	Category  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListComplaintsResult struct {
	Complaints []dto.ComplaintDTO `json:"complaints"`
	TotalCount int64              `json:"total_count"`
}

// ListComplaintsUseCase is the visibility/query layer: every listing goes
// through the actor's visibility scope, so a dealer sees only owned rows and
// a technician only actively assigned ones.
type ListComplaintsUseCase struct {
	complaintRepo  complaint.Repository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	logger         logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.Repository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo:  complaintRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	uc.logger.Debugw("executing list complaints use case",
		"actor_id", query.Actor.ID,
		"role", query.Actor.Role)

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	scope, err := scopeForActor(query.Actor, uc.technicians, uc.assignmentRepo)
	if err != nil {
		return nil, err
	}

	if err := scope.ApplyToFilter(ctx, filter); err != nil {
		return nil, err
	}

	// Technician with nothing assigned: empty result, never an error.
	if filter.ComplaintIDs != nil && len(filter.ComplaintIDs) == 0 {
		return &ListComplaintsResult{Complaints: []dto.ComplaintDTO{}, TotalCount: 0}, nil
	}

	complaints, total, err := uc.complaintRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	return &ListComplaintsResult{
		Complaints: dto.FromComplaints(complaints),
		TotalCount: total,
	}, nil
}

func (uc *ListComplaintsUseCase) buildFilter(query ListComplaintsQuery) (*complaint.Filter, error) {
	filter := &complaint.Filter{
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	return filter, nil
}
