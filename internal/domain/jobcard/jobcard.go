// Package jobcard holds the completed-service record produced from a
// resolved complaint. The descriptive fields are snapshotted by value at
// creation so later edits to the complaint or the customer never rewrite a
// finished record.
package jobcard

import (
	"fmt"
	"time"

	"fieldserve/internal/shared/biztime"
)

type CardStatus string

const (
	CardStatusOpen      CardStatus = "open"
	CardStatusCompleted CardStatus = "completed"
)

func (s CardStatus) String() string {
	return string(s)
}

func (s CardStatus) IsValid() bool {
	return s == CardStatusOpen || s == CardStatusCompleted
}

// Snapshot carries the fields copied by value from the complaint and the
// customer directory at creation time.
type Snapshot struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ComplaintCode   string
	ComplaintTitle  string
	Category        string
}

// JobCard is 1:1 with a complaint. Creation is idempotent at the use case
// and enforced by a unique index on complaint_id at the store.
type JobCard struct {
	id          uint
	complaintID uint
	snapshot    Snapshot

	workPerformed       string
	partsUsed           string
	resolutionNotes     string
	arrivedAt           *time.Time
	departedAt          *time.Time
	technicianSignature string
	customerSignature   string

	status    CardStatus
	createdAt time.Time
	updatedAt time.Time
}

func NewJobCard(complaintID uint, snapshot Snapshot) (*JobCard, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if len(snapshot.ComplaintCode) == 0 {
		return nil, fmt.Errorf("complaint code snapshot is required")
	}

	now := biztime.NowUTC()

	return &JobCard{
		complaintID: complaintID,
		snapshot:    snapshot,
		status:      CardStatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructJobCard(
	id uint,
	complaintID uint,
	snapshot Snapshot,
	workPerformed string,
	partsUsed string,
	resolutionNotes string,
	arrivedAt *time.Time,
	departedAt *time.Time,
	technicianSignature string,
	customerSignature string,
	status CardStatus,
	createdAt, updatedAt time.Time,
) (*JobCard, error) {
	if id == 0 {
		return nil, fmt.Errorf("job card ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid card status: %s", status)
	}

	return &JobCard{
		id:                  id,
		complaintID:         complaintID,
		snapshot:            snapshot,
		workPerformed:       workPerformed,
		partsUsed:           partsUsed,
		resolutionNotes:     resolutionNotes,
		arrivedAt:           arrivedAt,
		departedAt:          departedAt,
		technicianSignature: technicianSignature,
		customerSignature:   customerSignature,
		status:              status,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (j *JobCard) ID() uint {
	return j.id
}

func (j *JobCard) ComplaintID() uint {
	return j.complaintID
}

func (j *JobCard) Snapshot() Snapshot {
	return j.snapshot
}

func (j *JobCard) WorkPerformed() string {
	return j.workPerformed
}

func (j *JobCard) PartsUsed() string {
	return j.partsUsed
}

func (j *JobCard) ResolutionNotes() string {
	return j.resolutionNotes
}

func (j *JobCard) ArrivedAt() *time.Time {
	return j.arrivedAt
}

func (j *JobCard) DepartedAt() *time.Time {
	return j.departedAt
}

func (j *JobCard) TechnicianSignature() string {
	return j.technicianSignature
}

func (j *JobCard) CustomerSignature() string {
	return j.customerSignature
}

func (j *JobCard) Status() CardStatus {
	return j.status
}

func (j *JobCard) CreatedAt() time.Time {
	return j.createdAt
}

func (j *JobCard) UpdatedAt() time.Time {
	return j.updatedAt
}

func (j *JobCard) SetID(id uint) error {
	if j.id != 0 {
		return fmt.Errorf("job card ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("job card ID cannot be zero")
	}
	j.id = id
	return nil
}

// Update is a partial update of the mutable completion fields. Nil means
// leave unchanged. The snapshot is never touched.
type Update struct {
	WorkPerformed       *string
	PartsUsed           *string
	ResolutionNotes     *string
	ArrivedAt           *time.Time
	DepartedAt          *time.Time
	TechnicianSignature *string
	CustomerSignature   *string
	Complete            bool
}

// ApplyUpdate edits the mutable fields and refreshes updatedAt. A completed
// card accepts no further edits.
func (j *JobCard) ApplyUpdate(u Update) error {
	if j.status == CardStatusCompleted {
		return fmt.Errorf("job card is already completed")
	}

	if u.WorkPerformed != nil {
		j.workPerformed = *u.WorkPerformed
	}
	if u.PartsUsed != nil {
		j.partsUsed = *u.PartsUsed
	}
	if u.ResolutionNotes != nil {
		j.resolutionNotes = *u.ResolutionNotes
	}
	if u.ArrivedAt != nil {
		j.arrivedAt = u.ArrivedAt
	}
	if u.DepartedAt != nil {
		j.departedAt = u.DepartedAt
	}
	if u.TechnicianSignature != nil {
		j.technicianSignature = *u.TechnicianSignature
	}
	if u.CustomerSignature != nil {
		j.customerSignature = *u.CustomerSignature
	}
	if u.Complete {
		j.status = CardStatusCompleted
	}

	j.updatedAt = biztime.NowUTC()
	return nil
}
