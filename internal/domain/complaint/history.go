package complaint

import (
	"fmt"
	"time"

	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/shared/biztime"
)

// HistoryEntry is one append-only audit record. Replaying a complaint's
// entries in creation order reproduces its current status: the first entry
// records the initial new state (old == new), one more is written per status
// change, and assignment-only events keep old == new.
type HistoryEntry struct {
	id          uint
	complaintID uint
	oldStatus   vo.Status
	newStatus   vo.Status
	actorID     uint
	actorRole   string
	remark      string
	createdAt   time.Time
}

func NewHistoryEntry(
	complaintID uint,
	oldStatus vo.Status,
	newStatus vo.Status,
	actorID uint,
	actorRole string,
	remark string,
) (*HistoryEntry, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !oldStatus.IsValid() {
		return nil, fmt.Errorf("invalid old status")
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid new status")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if len(remark) > 1000 {
		return nil, fmt.Errorf("remark exceeds maximum length of 1000 characters")
	}

	return &HistoryEntry{
		complaintID: complaintID,
		oldStatus:   oldStatus,
		newStatus:   newStatus,
		actorID:     actorID,
		actorRole:   actorRole,
		remark:      remark,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	complaintID uint,
	oldStatus vo.Status,
	newStatus vo.Status,
	actorID uint,
	actorRole string,
	remark string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}

	return &HistoryEntry{
		id:          id,
		complaintID: complaintID,
		oldStatus:   oldStatus,
		newStatus:   newStatus,
		actorID:     actorID,
		actorRole:   actorRole,
		remark:      remark,
		createdAt:   createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) ComplaintID() uint {
	return h.complaintID
}

func (h *HistoryEntry) OldStatus() vo.Status {
	return h.oldStatus
}

func (h *HistoryEntry) NewStatus() vo.Status {
	return h.newStatus
}

func (h *HistoryEntry) ActorID() uint {
	return h.actorID
}

func (h *HistoryEntry) ActorRole() string {
	return h.actorRole
}

func (h *HistoryEntry) Remark() string {
	return h.remark
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}

// IsStatusChange reports whether the entry records an actual edge in the
// lifecycle graph, as opposed to an assignment-only audit record.
func (h *HistoryEntry) IsStatusChange() bool {
	return h.oldStatus != h.newStatus
}

// ReplayStatus folds history entries in order and returns the final status.
// Entries must be sorted by creation order. The bool is false for an empty
// trail.
func ReplayStatus(entries []*HistoryEntry) (vo.Status, bool) {
	if len(entries) == 0 {
		return "", false
	}
	return entries[len(entries)-1].NewStatus(), true
}
