package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
)

func newTestComplaint(t *testing.T, id, dealerID uint, status vo.Status) *complaint.Complaint {
	t.Helper()

	now := time.Now().UTC()
	c, err := complaint.ReconstructComplaint(
		id,
		"CMP-20260101-0001",
		dealerID,
		"Camera 3 shows no video",
		"Front gate camera went dark after the storm",
		vo.CategoryNoVideo,
		vo.PriorityNormal,
		vo.SourcePhone,
		complaint.Site{Address: "12 MG Road", City: "Pune", Pincode: "411001"},
		"Ravi",
		"9800000000",
		status,
		1,
		now, now,
	)
	require.NoError(t, err)
	return c
}

func dealerActor(id uint) identity.Actor {
	return identity.Actor{ID: id, Role: identity.RoleDealer}
}

func adminActor(id uint) identity.Actor {
	return identity.Actor{ID: id, Role: identity.RoleAdmin}
}

func technicianActor(id uint) identity.Actor {
	return identity.Actor{ID: id, Role: identity.RoleTechnician}
}

func TestChangeStatusUseCase_Execute_Success(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusAssigned)

	var updated *complaint.Complaint
	var appended *complaint.HistoryEntry

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updated = c
			return nil
		},
	}
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *complaint.HistoryEntry) error {
			appended = entry
			return nil
		},
	}

	uc := NewChangeStatusUseCase(complaintRepo, historyRepo, &mockTechnicianDirectory{},
		&mockAssignmentRepository{}, &mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ComplaintID: 1,
		NewStatus:   vo.StatusInProgress,
		Remark:      "Technician en route",
		Actor:       dealerActor(10),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "assigned", result.OldStatus)
	assert.Equal(t, "in_progress", result.NewStatus)

	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusInProgress, updated.Status())
	assert.Equal(t, 2, updated.Version())

	require.NotNil(t, appended)
	assert.Equal(t, vo.StatusAssigned, appended.OldStatus())
	assert.Equal(t, vo.StatusInProgress, appended.NewStatus())
	assert.Equal(t, uint(10), appended.ActorID())
	assert.Equal(t, "Technician en route", appended.Remark())
	assert.True(t, appended.IsStatusChange())
}

func TestChangeStatusUseCase_Execute_SameStatusNoOp(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusInProgress)

	updateCalls := 0
	appendCalls := 0

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			updateCalls++
			return nil
		},
	}
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *complaint.HistoryEntry) error {
			appendCalls++
			return nil
		},
	}

	uc := NewChangeStatusUseCase(complaintRepo, historyRepo, &mockTechnicianDirectory{},
		&mockAssignmentRepository{}, &mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ComplaintID: 1,
		NewStatus:   vo.StatusInProgress,
		Actor:       dealerActor(10),
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.OldStatus)
	assert.Equal(t, "in_progress", result.NewStatus)
	assert.Zero(t, updateCalls)
	assert.Zero(t, appendCalls)
	assert.Equal(t, 1, c.Version())
}

func TestChangeStatusUseCase_Execute_InvalidTransition(t *testing.T) {
	tests := []struct {
		name string
		from vo.Status
		to   vo.Status
	}{
		{name: "new to closed", from: vo.StatusNew, to: vo.StatusClosed},
		{name: "new to in_progress", from: vo.StatusNew, to: vo.StatusInProgress},
		{name: "new to resolved", from: vo.StatusNew, to: vo.StatusResolved},
		{name: "assigned to resolved", from: vo.StatusAssigned, to: vo.StatusResolved},
		{name: "closed to in_progress", from: vo.StatusClosed, to: vo.StatusInProgress},
		{name: "cancelled to assigned", from: vo.StatusCancelled, to: vo.StatusAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComplaint(t, 1, 10, tt.from)

			complaintRepo := &mockComplaintRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
					return c, nil
				},
			}

			uc := NewChangeStatusUseCase(complaintRepo, &mockHistoryRepository{}, &mockTechnicianDirectory{},
				&mockAssignmentRepository{}, &mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), ChangeStatusCommand{
				ComplaintID: 1,
				NewStatus:   tt.to,
				Actor:       dealerActor(10),
			})

			require.Error(t, err)
			assert.Nil(t, result)

			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrorTypeInvalidTransition, appErr.Type)
			assert.Equal(t, tt.from, c.Status())
		})
	}
}

func TestChangeStatusUseCase_Execute_ReopenResolved(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusResolved)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}

	uc := NewChangeStatusUseCase(complaintRepo, &mockHistoryRepository{}, &mockTechnicianDirectory{},
		&mockAssignmentRepository{}, &mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ComplaintID: 1,
		NewStatus:   vo.StatusInProgress,
		Remark:      "Issue came back overnight",
		Actor:       dealerActor(10),
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.OldStatus)
	assert.Equal(t, "in_progress", result.NewStatus)
}

func TestChangeStatusUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ChangeStatusCommand
		wantErr string
	}{
		{
			name:    "missing complaint id",
			cmd:     ChangeStatusCommand{NewStatus: vo.StatusAssigned, Actor: dealerActor(10)},
			wantErr: "complaint ID is required",
		},
		{
			name:    "invalid status",
			cmd:     ChangeStatusCommand{ComplaintID: 1, NewStatus: "archived", Actor: dealerActor(10)},
			wantErr: "invalid status: archived",
		},
		{
			name:    "missing actor",
			cmd:     ChangeStatusCommand{ComplaintID: 1, NewStatus: vo.StatusAssigned},
			wantErr: "actor is required",
		},
		{
			name: "remark too long",
			cmd: ChangeStatusCommand{
				ComplaintID: 1,
				NewStatus:   vo.StatusAssigned,
				Remark:      strings.Repeat("x", 1001),
				Actor:       dealerActor(10),
			},
			wantErr: "remark exceeds maximum length of 1000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewChangeStatusUseCase(&mockComplaintRepository{}, &mockHistoryRepository{},
				&mockTechnicianDirectory{}, &mockAssignmentRepository{}, &mockTransactionManager{},
				&mockEventDispatcher{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)

			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestChangeStatusUseCase_Execute_OtherDealerComplaintHidden(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusNew)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}

	uc := NewChangeStatusUseCase(complaintRepo, &mockHistoryRepository{}, &mockTechnicianDirectory{},
		&mockAssignmentRepository{}, &mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ComplaintID: 1,
		NewStatus:   vo.StatusCancelled,
		Actor:       dealerActor(99),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestChangeStatusUseCase_Execute_ConcurrentConflict(t *testing.T) {
	c := newTestComplaint(t, 1, 10, vo.StatusInProgress)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *complaint.Complaint) error {
			return errors.NewConflictError("complaint was modified concurrently, please retry")
		},
	}

	appendCalls := 0
	historyRepo := &mockHistoryRepository{
		AppendFunc: func(ctx context.Context, entry *complaint.HistoryEntry) error {
			appendCalls++
			return nil
		},
	}

	uc := NewChangeStatusUseCase(complaintRepo, historyRepo, &mockTechnicianDirectory{},
		&mockAssignmentRepository{}, &mockTransactionManager{}, &mockEventDispatcher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		ComplaintID: 1,
		NewStatus:   vo.StatusResolved,
		Actor:       dealerActor(10),
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	// The failed update aborts the transaction before the history append.
	assert.Zero(t, appendCalls)
}
