package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/errors"
)

func TestGetJobCardUseCase_Execute_Success(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)
	card := existingCard(t, 7, 1)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			assert.Equal(t, uint(1), complaintID)
			return card, nil
		},
	}

	uc := NewGetJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetJobCardQuery{
		Actor:       identity.Actor{ID: 10, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "Prakash", result.CustomerName)
}

func TestGetJobCardUseCase_Execute_NoCardYet(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			return nil, errors.NewNotFoundError("job card not found")
		},
	}

	uc := NewGetJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetJobCardQuery{
		Actor:       identity.Actor{ID: 10, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetJobCardUseCase_Execute_OtherDealerHidden(t *testing.T) {
	c := resolvedComplaint(t, 1, 10)

	complaintRepo := &mockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*complaint.Complaint, error) {
			return c, nil
		},
	}
	jobCardRepo := &mockJobCardRepository{
		GetByComplaintIDFunc: func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
			t.Fatal("card lookup must not run for an invisible complaint")
			return nil, nil
		},
	}

	uc := NewGetJobCardUseCase(jobCardRepo, complaintRepo, &mockAssignmentRepository{},
		&mockTechnicianDirectory{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetJobCardQuery{
		Actor:       identity.Actor{ID: 99, Role: identity.RoleDealer},
		ComplaintID: 1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
