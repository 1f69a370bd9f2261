package usecases

import (
	"context"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
)

// loadAccessibleComplaint fetches the complaint behind a job card operation
// and enforces the same visibility rules as the complaint read side: dealers
// see owned complaints, technicians see actively assigned ones, admins see
// all. Out-of-scope rows read as not found.
func loadAccessibleComplaint(
	ctx context.Context,
	complaintRepo complaint.Repository,
	assignmentRepo complaint.AssignmentRepository,
	technicians identity.TechnicianDirectory,
	actor identity.Actor,
	complaintID uint,
) (*complaint.Complaint, error) {
	c, err := complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError("complaint not found")
	}

	switch {
	case actor.IsAdmin():
		return c, nil
	case actor.IsDealer():
		if c.DealerID() != actor.ID {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return c, nil
	case actor.IsTechnician():
		tech, err := technicians.GetByActorID(ctx, actor.ID)
		if err != nil {
			return nil, errors.NewNotFoundError("technician identity not found")
		}
		active, err := assignmentRepo.GetActiveByComplaintID(ctx, complaintID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewNotFoundError("complaint not found")
			}
			return nil, errors.NewInternalError("failed to resolve assignment")
		}
		if active == nil || active.TechnicianID() != tech.ID {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return c, nil
	default:
		return nil, errors.NewValidationError("unknown actor role")
	}
}
