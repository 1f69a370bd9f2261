package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type AddNoteCommand struct {
	ComplaintID uint
	Text        string
	Actor       identity.Actor
}

type AddNoteResult struct {
	NoteID      uint      `json:"note_id"`
	ComplaintID uint      `json:"complaint_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type AddNoteUseCase struct {
	complaintRepo  complaint.Repository
	noteRepo       complaint.NoteRepository
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
	dispatcher     events.EventDispatcher
	logger         logger.Interface
}

func NewAddNoteUseCase(
	complaintRepo complaint.Repository,
	noteRepo complaint.NoteRepository,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		complaintRepo:  complaintRepo,
		noteRepo:       noteRepo,
		technicians:    technicians,
		assignmentRepo: assignmentRepo,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	uc.logger.Infow("executing add note use case", "complaint_id", cmd.ComplaintID, "actor_id", cmd.Actor.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add note command", "error", err)
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

	note, err := complaint.NewNote(c.ID(), cmd.Actor.ID, cmd.Actor.Role.String(), cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.noteRepo.Save(ctx, note); err != nil {
		uc.logger.Errorw("failed to save note", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to save note")
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(complaint.NewNoteAddedEvent(c.ID(), note.ID(), cmd.Actor.ID)); err != nil {
			uc.logger.Warnw("failed to dispatch note added event", "error", err)
		}
	}

	uc.logger.Infow("note added successfully", "complaint_id", c.ID(), "note_id", note.ID())

	return &AddNoteResult{
		NoteID:      note.ID(),
		ComplaintID: c.ID(),
		CreatedAt:   note.CreatedAt(),
	}, nil
}

func (uc *AddNoteUseCase) validateCommand(cmd AddNoteCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if len(cmd.Text) == 0 {
		return errors.NewValidationError("note text is required")
	}
	if cmd.Actor.ID == 0 || !cmd.Actor.Role.IsValid() {
		return errors.NewValidationError("actor is required")
	}
	return nil
}
