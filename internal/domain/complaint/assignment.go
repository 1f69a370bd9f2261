package complaint

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

// Assignment binds a technician to a complaint. At most one assignment per
// complaint is active at any instant; prior rows are deactivated, never
// deleted, so the assignment trail survives reassignment.
type Assignment struct {
	id           uint
	complaintID  uint
	technicianID uint
	assignedBy   uint
	isActive     bool
	createdAt    time.Time
}

func NewAssignment(complaintID, technicianID, assignedBy uint) (*Assignment, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if assignedBy == 0 {
		return nil, fmt.Errorf("assigned by actor ID is required")
	}

	return &Assignment{
		complaintID:  complaintID,
		technicianID: technicianID,
		assignedBy:   assignedBy,
		isActive:     true,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAssignment(
	id uint,
	complaintID uint,
	technicianID uint,
	assignedBy uint,
	isActive bool,
	createdAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}

	return &Assignment{
		id:           id,
		complaintID:  complaintID,
		technicianID: technicianID,
		assignedBy:   assignedBy,
		isActive:     isActive,
		createdAt:    createdAt,
	}, nil
}

func (a *Assignment) ID() uint {
	return a.id
}

func (a *Assignment) ComplaintID() uint {
	return a.complaintID
}

func (a *Assignment) TechnicianID() uint {
	return a.technicianID
}

func (a *Assignment) AssignedBy() uint {
	return a.assignedBy
}

func (a *Assignment) IsActive() bool {
	return a.isActive
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// Deactivate retires the assignment. Inactive assignments stay on record.
func (a *Assignment) Deactivate() {
	a.isActive = false
}
