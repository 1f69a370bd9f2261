package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
)

func activeTechnician(id uint) *identity.Technician {
	return &identity.Technician{ID: id, ActorID: 100 + id, DealerID: 10, Name: "Suresh", Active: true}
}

func TestAssignTechnicianUseCase_Execute_FreshAssignment(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusNew)

	var savedAssignment *complaint.Assignment
	var appended *complaint.HistoryEntry
	updateCalls := 0

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updateCalls++
			return nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		DeactivateActiveFunc: func(ctx context.Context, complaintID uint) (int64, error) {
			return 0, nil
		},
		SaveFunc: func(ctx context.Context, a *complaint.Assignment) error {
			savedAssignment = a
			return nil
		},
	}
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *complaint.HistoryEntry) error {
			appended = entry
			return nil
		},
	}
	technicians := &mockTechnicianDirectory{
		GetByIDFunc: func(ctx context.Context, technicianID uint) (*identity.Technician, error) {
			return activeTechnician(technicianID), nil
		},
	}

	uc := NewAssignTechnicianUseCase(complaintRepo, assignmentRepo, historyRepo, technicians,
		&mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{
		ComplaintID:  1,
		TechnicianID: 5,
		Actor:        dealerActor(10),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "assigned", result.Status)
	assert.False(t, result.Reassignment)

	assert.Equal(t, 1, updateCalls)
	assert.Equal(t, vo.StatusAssigned, c.Status())

	require.NotNil(t, savedAssignment)
	assert.Equal(t, uint(5), savedAssignment.TechnicianID())
	assert.Equal(t, uint(10), savedAssignment.AssignedBy())
	assert.True(t, savedAssignment.IsActive())

	require.NotNil(t, appended)
	assert.Equal(t, vo.StatusNew, appended.OldStatus())
	assert.Equal(t, vo.StatusAssigned, appended.NewStatus())
	assert.True(t, appended.IsStatusChange())
}

func TestAssignTechnicianUseCase_Execute_ReassignmentKeepsStatus(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusInProgress)

	var appended *complaint.HistoryEntry
	updateCalls := 0

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updateCalls++
			return nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		DeactivateActiveFunc: func(ctx context.Context, complaintID uint) (int64, error) {
			return 1, nil
		},
	}
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *complaint.HistoryEntry) error {
			appended = entry
			return nil
		},
	}
	technicians := &mockTechnicianDirectory{
		GetByIDFunc: func(ctx context.Context, technicianID uint) (*identity.Technician, error) {
			return activeTechnician(technicianID), nil
		},
	}

	uc := NewAssignTechnicianUseCase(complaintRepo, assignmentRepo, historyRepo, technicians,
		&mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{
		ComplaintID:  1,
		TechnicianID: 7,
		Actor:        adminActor(2),
	})

	require.NoError(t, err)
	assert.True(t, result.Reassignment)
	assert.Equal(t, "in_progress", result.Status)

	// Reassignment past new has no status edge, so the complaint row is
	// untouched and the audit entry records old == new.
	assert.Zero(t, updateCalls)
	require.NotNil(t, appended)
	assert.Equal(t, vo.StatusInProgress, appended.OldStatus())
	assert.Equal(t, vo.StatusInProgress, appended.NewStatus())
	assert.False(t, appended.IsStatusChange())
}

func TestAssignTechnicianUseCase_Execute_TechnicianActorForbidden(t *testing.T) {
	uc := NewAssignTechnicianUseCase(&mockComplaintRepository{}, &mockAssignmentRepository{},
		&mockHistoryRepository{}, &mockTechnicianDirectory{}, &mockTransactionManager{},
		&mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{
		ComplaintID:  1,
		TechnicianID: 5,
		Actor:        technicianActor(105),
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestAssignTechnicianUseCase_Execute_InactiveTechnician(t *testing.T) {
	technicians := &mockTechnicianDirectory{
		GetByIDFunc: func(ctx context.Context, technicianID uint) (*identity.Technician, error) {
			return &identity.Technician{ID: technicianID, Active: false}, nil
		},
	}

	uc := NewAssignTechnicianUseCase(&mockComplaintRepository{}, &mockAssignmentRepository{},
		&mockHistoryRepository{}, technicians, &mockTransactionManager{},
		&mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{
		ComplaintID:  1,
		TechnicianID: 5,
		Actor:        dealerActor(10),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTechnicianUseCase_Execute_TechnicianNotFound(t *testing.T) {
	technicians := &mockTechnicianDirectory{
		GetByIDFunc: func(ctx context.Context, technicianID uint) (*identity.Technician, error) {
			return nil, errors.NewNotFoundError("technician not found")
		},
	}

	uc := NewAssignTechnicianUseCase(&mockComplaintRepository{}, &mockAssignmentRepository{},
		&mockHistoryRepository{}, technicians, &mockTransactionManager{},
		&mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{
		ComplaintID:  1,
		TechnicianID: 404,
		Actor:        dealerActor(10),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
