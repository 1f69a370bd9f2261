package usecases

import (
	"context"

	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/shared/errors"
)

// visibilityScope is the per-role strategy deciding which complaints an
// actor may see. Adding a role means adding one variant here; nothing else
// branches on the role string.
type visibilityScope interface {
	// ApplyToFilter narrows a listing filter to the actor's visible rows.
	ApplyToFilter(ctx context.Context, f *complaint.Filter) error

	// CanAccess reports whether the actor may see a single complaint.
	CanAccess(ctx context.Context, c *complaint.Complaint) (bool, error)
}

type dealerScope struct {
	actorID uint
}

func (s dealerScope) ApplyToFilter(ctx context.Context, f *complaint.Filter) error {
	dealerID := s.actorID
	f.DealerID = &dealerID
	return nil
}

func (s dealerScope) CanAccess(ctx context.Context, c *complaint.Complaint) (bool, error) {
	return c.DealerID() == s.actorID, nil
}

type technicianScope struct {
	actorID        uint
	technicians    identity.TechnicianDirectory
	assignmentRepo complaint.AssignmentRepository
}

// visibleIDs resolves the technician identity and collects the complaint ids
// with an active assignment to them. A technician with nothing assigned gets
// an empty set, never an error.
func (s technicianScope) visibleIDs(ctx context.Context) ([]uint, error) {
	tech, err := s.technicians.GetByActorID(ctx, s.actorID)
	if err != nil {
		return nil, errors.NewNotFoundError("technician identity not found")
	}

	ids, err := s.assignmentRepo.ActiveComplaintIDsByTechnician(ctx, tech.ID)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve assigned complaints")
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

func (s technicianScope) ApplyToFilter(ctx context.Context, f *complaint.Filter) error {
	ids, err := s.visibleIDs(ctx)
	if err != nil {
		return err
	}
	f.ComplaintIDs = ids
	return nil
}

func (s technicianScope) CanAccess(ctx context.Context, c *complaint.Complaint) (bool, error) {
	ids, err := s.visibleIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == c.ID() {
			return true, nil
		}
	}
	return false, nil
}

type adminScope struct{}

func (adminScope) ApplyToFilter(ctx context.Context, f *complaint.Filter) error {
	return nil
}

func (adminScope) CanAccess(ctx context.Context, c *complaint.Complaint) (bool, error) {
	return true, nil
}

// scopeForActor dispatches to the role's visibility strategy.
func scopeForActor(
	actor identity.Actor,
	technicians identity.TechnicianDirectory,
	assignmentRepo complaint.AssignmentRepository,
) (visibilityScope, error) {
	switch actor.Role {
	case identity.RoleDealer:
		return dealerScope{actorID: actor.ID}, nil
	case identity.RoleTechnician:
		return technicianScope{
			actorID:        actor.ID,
			technicians:    technicians,
			assignmentRepo: assignmentRepo,
		}, nil
	case identity.RoleAdmin:
		return adminScope{}, nil
	default:
		return nil, errors.NewValidationError("unknown actor role")
	}
}

// loadVisibleComplaint fetches a complaint and applies the visibility check,
// reporting not-found for both missing and out-of-scope rows.
func loadVisibleComplaint(
	ctx context.Context,
	repo complaint.Repository,
	scope visibilityScope,
	complaintID uint,
) (*complaint.Complaint, error) {
	c, err := repo.GetByID(ctx, complaintID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError("complaint not found")
	}

	ok, err := scope.CanAccess(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFoundError("complaint not found")
	}

	return c, nil
}
