package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/errors"
)

func resolvedComplaint(t *testing.T, id, dealerID uint) *complaint.Complaint {
	t.Helper()
	return complaintWithStatus(t, id, dealerID, vo.StatusResolved)
}

func complaintWithStatus(t *testing.T, id, dealerID uint, status vo.Status) *complaint.Complaint {
	t.Helper()

	now := time.Now().UTC()
	c, err := complaint.ReconstructComplaint(
		id,
		"CMP-20260101-0001",
		dealerID,
		"DVR not recording",
		"",
		vo.CategoryDVRNVRIssue,
		vo.PriorityHigh,
		vo.SourcePhone,
		complaint.Site{Address: "Shop 4, Market Yard", City: "Nashik", Pincode: "422001"},
		"Prakash",
		"9820000000",
		status,
		1,
		now, now,
	)
	require.NoError(t, err)
	return c
}

func existingCard(t *testing.T, id, complaintID uint) *jobcard.JobCard {
	t.Helper()

	now := time.Now().UTC()
	card, err := jobcard.ReconstructJobCard(
		id, complaintID,
		jobcard.Snapshot{ComplaintCode: "CMP-20260101-0001", CustomerName: "Prakash"},
		"", "", "", nil, nil, "", "",
		jobcard.CardStatusOpen,
		now, now,
	)
	require.NoError(t, err)
	return card
}

func TestGenerateJobCardUseCase_Execute_CreatesCardWithSnapshot(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)

	var saved *jobcard.JobCard

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			return nil, errors.NewNotFoundError("job card not found")
		},
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			saved = card
			return card.SetID(7)
		},
	}

	uc := NewGenerateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateJobCardCommand{
		Actor:       identity.Actor{ID: 10, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.NoError(t, err)
	assert.False(t, result.AlreadyExisted)
	assert.Equal(t, uint(7), result.JobCard.ID)

	require.NotNil(t, saved)
	snap := saved.Snapshot()
	assert.Equal(t, "CMP-20260101-0001", snap.ComplaintCode)
	assert.Equal(t, "DVR not recording", snap.ComplaintTitle)
	assert.Equal(t, "Prakash", snap.CustomerName)
	assert.Equal(t, "Shop 4, Market Yard, Nashik, 422001", snap.CustomerAddress)
	assert.Equal(t, "dvr_nvr_issue", snap.Category)
}

func TestGenerateJobCardUseCase_Execute_Idempotent(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	card := existingCard(t, 7, 1)

	saveCalls := 0

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			return card, nil
		},
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			saveCalls++
			return nil
		},
	}

	uc := NewGenerateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateJobCardCommand{
		Actor:       identity.Actor{ID: 10, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.NoError(t, err)
	assert.True(t, result.AlreadyExisted)
	assert.Equal(t, uint(7), result.JobCard.ID)
	assert.Zero(t, saveCalls)
}

func TestGenerateJobCardUseCase_Execute_RacingCreateReturnsWinner(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	winner := existingCard(t, 7, 1)

	lookups := 0

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			lookups++
			if lookups == 1 {
				return nil, errors.NewNotFoundError("job card not found")
			}
			return winner, nil
		},
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry '1' for key 'job_cards.idx_job_cards_complaint_id'")
		},
	}

	uc := NewGenerateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateJobCardCommand{
		Actor:       identity.Actor{ID: 10, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.NoError(t, err)
	assert.True(t, result.AlreadyExisted)
	assert.Equal(t, uint(7), result.JobCard.ID)
}

func TestGenerateJobCardUseCase_Execute_UnresolvedComplaintStillGetsCard(t *testing.T) {
	c := complaintWithStatus(t, 1, 10, vo.StatusInProgress)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			return nil, errors.NewNotFoundError("job card not found")
		},
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			return card.SetID(8)
		},
	}

	uc := NewGenerateJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateJobCardCommand{
		Actor:       identity.Actor{ID: 10, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.NoError(t, err)
	assert.False(t, result.AlreadyExisted)
}

func TestGenerateJobCardUseCase_Execute_AssignedTechnicianAllowed(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	active, err := complaint.ReconstructAssignment(3, 1, 5, 10, true, time.Now().UTC())
	require.NoError(t, err)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	technicians := &mockTechnicianDirectory{
		GetByActorIDFunc: func(ctx context.Context, actorID uint) (*identity.Technician, error) {
			return &identity.Technician{ID: 5, ActorID: actorID, DealerID: 10, Active: true}, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		GetActiveByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Assignment, error) {
			return active, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			return nil, errors.NewNotFoundError("job card not found")
		},
		SaveFunc: func(ctx context.Context, card *jobcard.JobCard) error {
			return card.SetID(9)
		},
	}

	uc := NewGenerateJobCardUseCase(jobCardRepo, complaintRepo, assignmentRepo, technicians, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateJobCardCommand{
		Actor:       identity.Actor{ID: 105, Role: identity.RoleTechnician},
		ComplaintID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), result.JobCard.ID)
}

func TestGenerateJobCardUseCase_Execute_UnassignedTechnicianHidden(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	technicians := &mockTechnicianDirectory{
		GetByActorIDFunc: func(ctx context.Context, actorID uint) (*identity.Technician, error) {
			return &identity.Technician{ID: 5, ActorID: actorID, DealerID: 10, Active: true}, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		GetActiveByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Assignment, error) {
			return nil, nil
		},
	}

	uc := NewGenerateJobCardUseCase(&mockJobCardRepository{}, complaintRepo, assignmentRepo, technicians, &mockLogger{})

	result, err := uc.Execute(context.Background(), GenerateJobCardCommand{
		Actor:       identity.Actor{ID: 105, Role: identity.RoleTechnician},
		ComplaintID: 1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
