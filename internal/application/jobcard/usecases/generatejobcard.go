package usecases

import (
	"context"
	"strings"

	"fieldserve/internal/application/jobcard/dto"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type GenerateJobCardCommand struct {
	Actor       identity.Actor
	ComplaintID uint
}

type GenerateJobCardResult struct {
	JobCard        dto.JobCardDTO `json:"job_card"`
	AlreadyExisted bool           `json:"already_existed"`
}

// GenerateJobCardUseCase creates the job card for a complaint, or returns the
// existing one. A complaint that is not yet resolved still gets a card; the
// mismatch is logged, not rejected, since technicians fill cards in the field
// before the office marks the complaint resolved.
type GenerateJobCardUseCase struct {
	jobCardRepo    jobcard.Repository
	complaintRepo  complaint.Repository
	assignmentRepo complaint.AssignmentRepository
	technicians    identity.TechnicianDirectory
	logger         logger.Interface
}

func NewGenerateJobCardUseCase(
	jobCardRepo jobcard.Repository,
	complaintRepo complaint.Repository,
	assignmentRepo complaint.AssignmentRepository,
	technicians identity.TechnicianDirectory,
	logger logger.Interface,
) *GenerateJobCardUseCase {
	return &GenerateJobCardUseCase{
		jobCardRepo:    jobCardRepo,
		complaintRepo:  complaintRepo,
		assignmentRepo: assignmentRepo,
		technicians:    technicians,
		logger:         logger,
	}
}

func (uc *GenerateJobCardUseCase) Execute(ctx context.Context, cmd GenerateJobCardCommand) (*GenerateJobCardResult, error) {
	uc.logger.Infow("executing generate job card use case",
		"complaint_id", cmd.ComplaintID,
		"actor_id", cmd.Actor.ID)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint id is required")
	}

	c, err := loadAccessibleComplaint(ctx, uc.complaintRepo, uc.assignmentRepo, uc.technicians, cmd.Actor, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}

	// Idempotent create: first call wins, later calls get the same card.
	existing, err := uc.jobCardRepo.GetByComplaintID(ctx, cmd.ComplaintID)
	if err == nil && existing != nil {
		result := dto.FromJobCard(existing)
		return &GenerateJobCardResult{JobCard: result, AlreadyExisted: true}, nil
	}
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up existing job card", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to look up job card")
	}

	if !c.Status().IsResolved() && !c.Status().IsClosed() {
		uc.logger.Warnw("generating job card for unresolved complaint",
			"complaint_id", c.ID(),
			"status", c.Status())
	}

	card, err := jobcard.NewJobCard(c.ID(), buildSnapshot(c))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.jobCardRepo.Save(ctx, card); err != nil {
		// Racing create lost to the unique index: hand back the winner's card.
		if errors.IsDuplicateError(err) {
			winner, getErr := uc.jobCardRepo.GetByComplaintID(ctx, cmd.ComplaintID)
			if getErr == nil {
				result := dto.FromJobCard(winner)
				return &GenerateJobCardResult{JobCard: result, AlreadyExisted: true}, nil
			}
		}
		uc.logger.Errorw("failed to save job card", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to save job card")
	}

	uc.logger.Infow("job card generated", "job_card_id", card.ID(), "complaint_id", c.ID())

	result := dto.FromJobCard(card)
	return &GenerateJobCardResult{JobCard: result, AlreadyExisted: false}, nil
}

func buildSnapshot(c *complaint.Complaint) jobcard.Snapshot {
	site := c.Site()
	parts := make([]string, 0, 4)
	for _, p := range []string{site.Address, site.Area, site.City, site.Pincode} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return jobcard.Snapshot{
		CustomerName:    c.ContactName(),
		CustomerPhone:   c.ContactPhone(),
		CustomerAddress: strings.Join(parts, ", "),
		ComplaintCode:   c.Code(),
		ComplaintTitle:  c.Title(),
		Category:        c.Category().String(),
	}
}
