package usecases

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type ChangeStatusCommand struct {
	ComplaintID uint
	NewStatus   vo.Status
	Remark      string
	Actor       identity.Actor
}

type ChangeStatusResult struct {
	ComplaintID uint      `json:"complaint_id"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ChangeStatusUseCase validates and applies lifecycle transitions. The
// status write and the history append commit atomically; the board's
// drag-and-drop path calls this directly, so illegal moves are rejected
// here rather than upstream.
type ChangeStatusUseCase struct {
	complaintRepo  complaint.Repository
	historyRepo    complaint.HistoryRepository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	txManager      TransactionManager
	dispatcher     events.EventDispatcher
	logger         logger.Interface
}

func NewChangeStatusUseCase(
	complaintRepo complaint.Repository,
	historyRepo complaint.HistoryRepository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	txManager TransactionManager,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		complaintRepo:  complaintRepo,
		historyRepo:    historyRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"complaint_id", cmd.ComplaintID,
		"new_status", cmd.NewStatus,
		"actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
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

	oldStatus := c.Status()

	// Same-column drop on the board: nothing to write, nothing to audit.
	if oldStatus == cmd.NewStatus {
		return &ChangeStatusResult{
			ComplaintID: c.ID(),
			OldStatus:   oldStatus.String(),
			NewStatus:   oldStatus.String(),
			UpdatedAt:   c.UpdatedAt(),
		}, nil
	}

	if err := c.ChangeStatus(cmd.NewStatus); err != nil {
		var transitionErr *complaint.ErrInvalidTransition
		if goerrors.As(err, &transitionErr) {
			uc.logger.Warnw("illegal status transition rejected",
				"complaint_id", cmd.ComplaintID,
				"from", transitionErr.From,
				"to", transitionErr.To)
			return nil, errors.NewInvalidTransitionError(transitionErr.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Update(txCtx, c); err != nil {
			return err
		}

		entry, err := complaint.NewHistoryEntry(
			c.ID(),
			oldStatus,
			cmd.NewStatus,
			cmd.Actor.ID,
			cmd.Actor.Role.String(),
			cmd.Remark,
		)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist status change",
			"complaint_id", cmd.ComplaintID,
			"error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to persist status change")
	}

	if uc.dispatcher != nil {
		event := complaint.NewStatusChangedEvent(c.ID(), oldStatus.String(), cmd.NewStatus.String(), cmd.Actor.ID)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch status changed event", "error", err)
		}
	}

	uc.logger.Infow("complaint status changed successfully",
		"complaint_id", cmd.ComplaintID,
		"old_status", oldStatus,
		"new_status", cmd.NewStatus)

	return &ChangeStatusResult{
		ComplaintID: c.ID(),
		OldStatus:   oldStatus.String(),
		NewStatus:   c.Status().String(),
		UpdatedAt:   c.UpdatedAt(),
	}, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}

	if !cmd.NewStatus.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status: %s", cmd.NewStatus))
	}

	if cmd.Actor.ID == 0 || !cmd.Actor.Role.IsValid() {
		return errors.NewValidationError("actor is required")
	}

	if len(cmd.Remark) > 1000 {
		return errors.NewValidationError("remark exceeds maximum length of 1000 characters")
	}

	return nil
}
