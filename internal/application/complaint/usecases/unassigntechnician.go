package usecases

import (
	"context"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

const remarkTechnicianRemoved = "Technician removed from assignment"

type UnassignTechnicianCommand struct {
	ComplaintID uint
	Actor       identity.Actor
}

type UnassignTechnicianResult struct {
	ComplaintID  uint   `json:"complaint_id"`
	TechnicianID uint   `json:"technician_id,omitempty"`
	Status       string `json:"status"`
	WasAssigned  bool   `json:"was_assigned"`
}

// UnassignTechnicianUseCase retires the active assignment without touching
// complaint status. Regressing to new is a deliberate, separate status
// change by the caller; a complaint may sit assigned with no technician
// pending manual re-triage.
type UnassignTechnicianUseCase struct {
	complaintRepo  complaint.Repository
	assignmentRepo complaint.AssignmentRepository
	historyRepo    complaint.HistoryRepository
	technicians    identity.TechnicianDirectory
	txManager      TransactionManager
	dispatcher     events.EventDispatcher
	logger         logger.Interface
}

func NewUnassignTechnicianUseCase(
	complaintRepo complaint.Repository,
	assignmentRepo complaint.AssignmentRepository,
	historyRepo complaint.HistoryRepository,
	technicians identity.TechnicianDirectory,
	txManager TransactionManager,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *UnassignTechnicianUseCase {
	return &UnassignTechnicianUseCase{
		complaintRepo:  complaintRepo,
		assignmentRepo: assignmentRepo,
		historyRepo:    historyRepo,
		technicians:    technicians,
		txManager:      txManager,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *UnassignTechnicianUseCase) Execute(ctx context.Context, cmd UnassignTechnicianCommand) (*UnassignTechnicianResult, error) {
	uc.logger.Infow("executing unassign technician use case",
		"complaint_id", cmd.ComplaintID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid unassign technician command", "error", err)
		return nil, err
	}

	scope, err := scopeForActor(cmd.Actor, uc.technicians, uc.assignmentRepo)
	if err != nil {
		return nil, err
	}

	c, err := loadVisibleComplaint(ctx, uc.complaintRepo, scope, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, err
	}

	active, err := uc.assignmentRepo.GetActiveByComplaintID(ctx, c.ID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.NewInternalError("failed to load active assignment")
	}

	if active == nil {
		return &UnassignTechnicianResult{
			ComplaintID: c.ID(),
			Status:      c.Status().String(),
			WasAssigned: false,
		}, nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.assignmentRepo.DeactivateActive(txCtx, c.ID()); err != nil {
			return err
		}

		entry, err := complaint.NewHistoryEntry(
			c.ID(),
			c.Status(),
			c.Status(),
			cmd.Actor.ID,
			cmd.Actor.Role.String(),
			remarkTechnicianRemoved,
		)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to unassign technician", "complaint_id", cmd.ComplaintID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to unassign technician")
	}

	if uc.dispatcher != nil {
		event := complaint.NewTechnicianUnassignedEvent(c.ID(), active.TechnicianID(), cmd.Actor.ID)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch technician unassigned event", "error", err)
		}
	}

	uc.logger.Infow("technician unassigned successfully",
		"complaint_id", c.ID(),
		"technician_id", active.TechnicianID())

	return &UnassignTechnicianResult{
		ComplaintID:  c.ID(),
		TechnicianID: active.TechnicianID(),
		Status:       c.Status().String(),
		WasAssigned:  true,
	}, nil
}

func (uc *UnassignTechnicianUseCase) validateCommand(cmd UnassignTechnicianCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.Actor.ID == 0 || !cmd.Actor.Role.IsValid() {
		return errors.NewValidationError("actor is required")
	}
	if cmd.Actor.IsTechnician() {
		return errors.NewForbiddenError("technicians cannot unassign complaints")
	}
	return nil
}
