package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/errors"
)

func TestUpdateJobCardUseCase_Execute_Success(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	card := existingCard(t, 7, 1)

	var updated *jobcard.JobCard

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*jobcard.JobCard, error) {
			return card, nil
		},
		UpdateFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			updated = card
			return nil
		},
	}

	uc := NewUpdateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	work := "Swapped the HDD, verified recording"
	parts := "1x 2TB surveillance HDD"
	result, err := uc.Execute(context.Background(), UpdateJobCardCommand{
		Actor:         identity.Actor{ID: 10, Role: identity.RoleDealer},
		JobCardID:     7,
		WorkPerformed: &work,
		PartsUsed:     &parts,
	})

	require.NoError(t, err)
	assert.Equal(t, work, result.WorkPerformed)
	assert.Equal(t, parts, result.PartsUsed)
	assert.Equal(t, "open", result.Status)

	require.NotNil(t, updated)
	assert.Equal(t, work, updated.WorkPerformed())
}

func TestUpdateJobCardUseCase_Execute_Complete(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	card := existingCard(t, 7, 1)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*jobcard.JobCard, error) {
			return card, nil
		},
	}

	uc := NewUpdateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	sig := "signed"
	result, err := uc.Execute(context.Background(), UpdateJobCardCommand{
		Actor:             identity.Actor{ID: 10, Role: identity.RoleDealer},
		JobCardID:         7,
		CustomerSignature: &sig,
		Complete:          true,
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, jobcard.CardStatusCompleted, card.Status())
}

func TestUpdateJobCardUseCase_Execute_CompletedCardRejectsEdits(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)

	now := time.Now().UTC()
	completed, err := jobcard.ReconstructJobCard(
		7, 1,
		jobcard.Snapshot{ComplaintCode: "CMP-20260101-0001"},
		"done", "", "", nil, nil, "", "signed",
		jobcard.CardStatusCompleted,
		now, now,
	)
	require.NoError(t, err)

	updateCalls := 0

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*jobcard.JobCard, error) {
			return completed, nil
		},
		UpdateFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			updateCalls++
			return nil
		},
	}

	uc := NewUpdateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	work := "late edit"
	result, err := uc.Execute(context.Background(), UpdateJobCardCommand{
		Actor:         identity.Actor{ID: 10, Role: identity.RoleDealer},
		JobCardID:     7,
		WorkPerformed: &work,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	assert.Zero(t, updateCalls)
}

func TestUpdateJobCardUseCase_Execute_OtherDealerHidden(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	card := existingCard(t, 7, 1)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*jobcard.JobCard, error) {
			return card, nil
		},
	}

	uc := NewUpdateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	work := "edit"
	result, err := uc.Execute(context.Background(), UpdateJobCardCommand{
		Actor:         identity.Actor{ID: 99, Role: identity.RoleDealer},
		JobCardID:     7,
		WorkPerformed: &work,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
