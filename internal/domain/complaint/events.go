package complaint

import (
	"strconv"
	"time"

	"fieldserve/internal/domain/shared/events"
)

const (
	EventTypeComplaintCreated     = "complaint.created"
	EventTypeTechnicianAssigned   = "complaint.technician_assigned"
	EventTypeTechnicianUnassigned = "complaint.technician_unassigned"
	EventTypeStatusChanged        = "complaint.status_changed"
	EventTypeNoteAdded            = "complaint.note_added"
)

type ComplaintCreatedEvent struct {
	events.BaseEvent
	ComplaintID uint   `json:"complaint_id"`
	Code        string `json:"code"`
	DealerID    uint   `json:"dealer_id"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func NewComplaintCreatedEvent(c *Complaint) ComplaintCreatedEvent {
	return ComplaintCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(c.ID()), 10),
			EventType:   EventTypeComplaintCreated,
			OccurredAt:  time.Now().UTC(),
		},
		ComplaintID: c.ID(),
		Code:        c.Code(),
		DealerID:    c.DealerID(),
		Category:    c.Category().String(),
		Priority:    c.Priority().String(),
	}
}

type TechnicianAssignedEvent struct {
	events.BaseEvent
	ComplaintID  uint `json:"complaint_id"`
	TechnicianID uint `json:"technician_id"`
	AssignedBy   uint `json:"assigned_by"`
	Reassignment bool `json:"reassignment"`
}

func NewTechnicianAssignedEvent(complaintID, technicianID, assignedBy uint, reassignment bool) TechnicianAssignedEvent {
	return TechnicianAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(complaintID), 10),
			EventType:   EventTypeTechnicianAssigned,
			OccurredAt:  time.Now().UTC(),
		},
		ComplaintID:  complaintID,
		TechnicianID: technicianID,
		AssignedBy:   assignedBy,
		Reassignment: reassignment,
	}
}

type TechnicianUnassignedEvent struct {
	events.BaseEvent
	ComplaintID  uint `json:"complaint_id"`
	TechnicianID uint `json:"technician_id"`
	RemovedBy    uint `json:"removed_by"`
}

func NewTechnicianUnassignedEvent(complaintID, technicianID, removedBy uint) TechnicianUnassignedEvent {
	return TechnicianUnassignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(complaintID), 10),
			EventType:   EventTypeTechnicianUnassigned,
			OccurredAt:  time.Now().UTC(),
		},
		ComplaintID:  complaintID,
		TechnicianID: technicianID,
		RemovedBy:    removedBy,
	}
}

type StatusChangedEvent struct {
	events.BaseEvent
	ComplaintID uint   `json:"complaint_id"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	ChangedBy   uint   `json:"changed_by"`
}

func NewStatusChangedEvent(complaintID uint, oldStatus, newStatus string, changedBy uint) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(complaintID), 10),
			EventType:   EventTypeStatusChanged,
			OccurredAt:  time.Now().UTC(),
		},
		ComplaintID: complaintID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   changedBy,
	}
}

type NoteAddedEvent struct {
	events.BaseEvent
	ComplaintID uint `json:"complaint_id"`
	NoteID      uint `json:"note_id"`
	AuthorID    uint `json:"author_id"`
}

func NewNoteAddedEvent(complaintID, noteID, authorID uint) NoteAddedEvent {
	return NoteAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(complaintID), 10),
			EventType:   EventTypeNoteAdded,
			OccurredAt:  time.Now().UTC(),
		},
		ComplaintID: complaintID,
		NoteID:      noteID,
		AuthorID:    authorID,
	}
}
