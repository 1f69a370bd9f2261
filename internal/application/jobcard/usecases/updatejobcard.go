package usecases

import (
	"context"
	"time"

	"fieldserve/internal/application/jobcard/dto"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type UpdateJobCardCommand struct {
	Actor     identity.Actor
	JobCardID uint

	WorkPerformed       *string
	PartsUsed           *string
	ResolutionNotes     *string
	ArrivedAt           *time.Time
	DepartedAt          *time.Time
	TechnicianSignature *string
	CustomerSignature   *string
	Complete            bool
}

type UpdateJobCardUseCase struct {
	jobCardRepo    jobcard.Repository
	complaintRepo  complaint.Repository
	assignmentRepo complaint.AssignmentRepository
	technicians    identity.TechnicianDirectory
	logger         logger.Interface
}

func NewUpdateJobCardUseCase(
	jobCardRepo jobcard.Repository,
	complaintRepo complaint.Repository,
	assignmentRepo complaint.AssignmentRepository,
	technicians identity.TechnicianDirectory,
	logger logger.Interface,
) *UpdateJobCardUseCase {
	return &UpdateJobCardUseCase{
		jobCardRepo:    jobCardRepo,
		complaintRepo:  complaintRepo,
		assignmentRepo: assignmentRepo,
		technicians:    technicians,
		logger:         logger,
	}
}

func (uc *UpdateJobCardUseCase) Execute(ctx context.Context, cmd UpdateJobCardCommand) (*dto.JobCardDTO, error) {
	uc.logger.Infow("executing update job card use case",
		"job_card_id", cmd.JobCardID,
		"actor_id", cmd.Actor.ID)

	if cmd.JobCardID == 0 {
		return nil, errors.NewValidationError("job card id is required")
	}

	card, err := uc.jobCardRepo.GetByID(ctx, cmd.JobCardID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError("job card not found")
	}

	if _, err := loadAccessibleComplaint(ctx, uc.complaintRepo, uc.assignmentRepo, uc.technicians, cmd.Actor, card.ComplaintID()); err != nil {
		return nil, err
	}

	update := jobcard.Update{
		WorkPerformed:       cmd.WorkPerformed,
		PartsUsed:           cmd.PartsUsed,
		ResolutionNotes:     cmd.ResolutionNotes,
		ArrivedAt:           cmd.ArrivedAt,
		DepartedAt:          cmd.DepartedAt,
		TechnicianSignature: cmd.TechnicianSignature,
		CustomerSignature:   cmd.CustomerSignature,
		Complete:            cmd.Complete,
	}
	if err := card.ApplyUpdate(update); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.jobCardRepo.Update(ctx, card); err != nil {
		uc.logger.Errorw("failed to update job card", "job_card_id", card.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update job card")
	}

	uc.logger.Infow("job card updated", "job_card_id", card.ID(), "status", card.Status())

	result := dto.FromJobCard(card)
	return &result, nil
}
