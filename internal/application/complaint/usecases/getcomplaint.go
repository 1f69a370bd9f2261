package usecases

import (
	"context"

	"fieldserve/internal/application/complaint/dto"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetComplaintQuery struct {
	Actor       identity.Actor
	ComplaintID uint
}

type GetComplaintUseCase struct {
	complaintRepo  complaint.Repository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	logger         logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo:  complaintRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint id is required")
	}

	scope, err := scopeForActor(query.Actor, uc.technicians, uc.assignmentRepo)
	if err != nil {
		return nil, err
	}

	c, err := loadVisibleComplaint(ctx, uc.complaintRepo, scope, query.ComplaintID)
	if err != nil {
		return nil, err
	}

	result := dto.FromComplaint(c)
	return &result, nil
}
