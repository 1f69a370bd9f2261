package usecases

import (
	"context"

	"fieldserve/internal/application/complaint/dto"
)

// TransactionManager runs a function atomically against the backing store.
// Satisfied by db.TransactionManager; mocked in tests.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error)
}

type UnassignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd UnassignTechnicianCommand) (*UnassignTechnicianResult, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type GetHistoryExecutor interface {
	Execute(ctx context.Context, query GetHistoryQuery) ([]dto.HistoryEntryDTO, error)
}

type ListNotesExecutor interface {
	Execute(ctx context.Context, query ListNotesQuery) ([]dto.NoteDTO, error)
}

type GetBoardExecutor interface {
	Execute(ctx context.Context, query GetBoardQuery) (*GetBoardResult, error)
}
