package usecases

import (
	"context"

	"fieldserve/internal/application/jobcard/dto"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GetJobCardQuery struct {
	Actor       identity.Actor
	ComplaintID uint
}

type GetJobCardUseCase struct {
	jobCardRepo    jobcard.Repository
	complaintRepo  complaint.Repository
	assignmentRepo complaint.AssignmentRepository
	technicians    identity.TechnicianDirectory
	logger         logger.Interface
}

func NewGetJobCardUseCase(
	jobCardRepo jobcard.Repository,
	complaintRepo complaint.Repository,
	assignmentRepo complaint.AssignmentRepository,
	technicians identity.TechnicianDirectory,
	logger logger.Interface,
) *GetJobCardUseCase {
	return &GetJobCardUseCase{
		jobCardRepo:    jobCardRepo,
		complaintRepo:  complaintRepo,
		assignmentRepo: assignmentRepo,
		technicians:    technicians,
		logger:         logger,
	}
}

func (uc *GetJobCardUseCase) Execute(ctx context.Context, query GetJobCardQuery) (*dto.JobCardDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint id is required")
	}

	if _, err := loadAccessibleComplaint(ctx, uc.complaintRepo, uc.assignmentRepo, uc.technicians, query.Actor, query.ComplaintID); err != nil {
		return nil, err
	}

	card, err := uc.jobCardRepo.GetByComplaintID(ctx, query.ComplaintID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get job card", "complaint_id", query.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to get job card")
	}

	result := dto.FromJobCard(card)
	return &result, nil
}
