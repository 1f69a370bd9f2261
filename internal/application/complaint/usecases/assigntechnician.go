package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

const (
	remarkTechnicianAssigned   = "Technician Assigned"
	remarkTechnicianReassigned = "Technician Reassigned"
)

type AssignTechnicianCommand struct {
	ComplaintID  uint
	TechnicianID uint
	Actor        identity.Actor
}

type AssignTechnicianResult struct {
	ComplaintID  uint      `json:"complaint_id"`
	TechnicianID uint      `json:"technician_id"`
	Status       string    `json:"status"`
	Reassignment bool      `json:"reassignment"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssignTechnicianUseCase maintains the single-active-assignment invariant:
// deactivating the prior binding and inserting the new one happen in the
// same transaction, so no reader ever observes two active rows.
type AssignTechnicianUseCase struct {
	complaintRepo  complaint.Repository
	assignmentRepo complaint.AssignmentRepository
	historyRepo    complaint.HistoryRepository
	technicians    identity.TechnicianDirectory
	txManager      TransactionManager
	dispatcher     events.EventDispatcher
	logger         logger.Interface
}

func NewAssignTechnicianUseCase(
	complaintRepo complaint.Repository,
	assignmentRepo complaint.AssignmentRepository,
	historyRepo complaint.HistoryRepository,
	technicians identity.TechnicianDirectory,
	txManager TransactionManager,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		complaintRepo:  complaintRepo,
		assignmentRepo: assignmentRepo,
		historyRepo:    historyRepo,
		technicians:    technicians,
		txManager:      txManager,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error) {
	uc.logger.Infow("executing assign technician use case",
		"complaint_id", cmd.ComplaintID,
		"technician_id", cmd.TechnicianID,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign technician command", "error", err)
		return nil, err
	}

	tech, err := uc.technicians.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to find technician", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewNotFoundError("technician not found")
	}
	if !tech.Active {
		return nil, errors.NewValidationError("technician is not active and cannot be assigned complaints")
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

	oldStatus := c.Status()
	isNew := oldStatus.IsNew()

	assignment, err := complaint.NewAssignment(c.ID(), cmd.TechnicianID, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var reassignment bool

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		deactivated, err := uc.assignmentRepo.DeactivateActive(txCtx, c.ID())
		if err != nil {
			return err
		}
		reassignment = deactivated > 0

		if err := uc.assignmentRepo.Save(txCtx, assignment); err != nil {
			return err
		}

		if isNew {
			if err := c.ChangeStatus(vo.StatusAssigned); err != nil {
				return err
			}
			if err := uc.complaintRepo.Update(txCtx, c); err != nil {
				return err
			}

			entry, err := complaint.NewHistoryEntry(
				c.ID(),
				oldStatus,
				vo.StatusAssigned,
				cmd.Actor.ID,
				cmd.Actor.Role.String(),
				remarkTechnicianAssigned,
			)
			if err != nil {
				return err
			}
			return uc.historyRepo.Append(txCtx, entry)
		}

		// Past new there is no status edge for reassignment; the audit trail
		// still records the event with old == new.
		entry, err := complaint.NewHistoryEntry(
			c.ID(),
			oldStatus,
			oldStatus,
			cmd.Actor.ID,
			cmd.Actor.Role.String(),
			remarkTechnicianReassigned,
		)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign technician",
			"complaint_id", cmd.ComplaintID,
			"technician_id", cmd.TechnicianID,
			"error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to assign technician")
	}

	if uc.dispatcher != nil {
		event := complaint.NewTechnicianAssignedEvent(c.ID(), cmd.TechnicianID, cmd.Actor.ID, reassignment)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch technician assigned event", "error", err)
		}
	}

	uc.logger.Infow("technician assigned successfully",
		"complaint_id", c.ID(),
		"technician_id", cmd.TechnicianID,
		"reassignment", reassignment)

	return &AssignTechnicianResult{
		ComplaintID:  c.ID(),
		TechnicianID: cmd.TechnicianID,
		Status:       c.Status().String(),
		Reassignment: reassignment,
		UpdatedAt:    c.UpdatedAt(),
	}, nil
}

func (uc *AssignTechnicianUseCase) validateCommand(cmd AssignTechnicianCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.TechnicianID == 0 {
		return errors.NewValidationError("technician ID is required")
	}
	if cmd.Actor.ID == 0 || !cmd.Actor.Role.IsValid() {
		return errors.NewValidationError("actor is required")
	}
	if cmd.Actor.IsTechnician() {
		return errors.NewForbiddenError("technicians cannot assign complaints")
	}
	return nil
}
