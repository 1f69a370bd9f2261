package complaint

import (
	"context"

	vo "fieldserve/internal/domain/complaint/valueobjects"
)

// Repository is the complaint store of truth. Update performs an optimistic
// version check and reports a conflict when a concurrent writer won, so
// racing status changes serialize instead of silently losing one.
type Repository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	GetByCode(ctx context.Context, code string) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)
	CountByStatus(ctx context.Context, dealerID uint) (map[vo.Status]int64, error)
}

// Filter narrows a complaint listing. Nil fields are ignored. ComplaintIDs
// restricts to an explicit id set (the technician visibility path); a non-nil
// empty slice matches nothing.
type Filter struct {
	DealerID     *uint
	ComplaintIDs []uint
	Status       *vo.Status
	Priority     *vo.Priority
	Category     *vo.Category
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

// AssignmentRepository persists the technician-to-complaint bindings.
// DeactivateActive and Save are issued inside one transaction by the
// use case so the single-active invariant never has an observable gap.
type AssignmentRepository interface {
	Save(ctx context.Context, a *Assignment) error
	DeactivateActive(ctx context.Context, complaintID uint) (int64, error)
	GetActiveByComplaintID(ctx context.Context, complaintID uint) (*Assignment, error)
	ListByComplaintID(ctx context.Context, complaintID uint) ([]*Assignment, error)
	ActiveComplaintIDsByTechnician(ctx context.Context, technicianID uint) ([]uint, error)
}

// HistoryRepository appends and reads the audit trail. There is no update
// or delete; entries are immutable once written.
type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	ListByComplaintID(ctx context.Context, complaintID uint) ([]*HistoryEntry, error)
}

// NoteRepository appends and reads complaint notes.
type NoteRepository interface {
	Save(ctx context.Context, note *Note) error
	ListByComplaintID(ctx context.Context, complaintID uint) ([]*Note, error)
}
