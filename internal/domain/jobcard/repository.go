package jobcard

import "context"

// Repository persists job cards. GetByComplaintID backs the idempotent
// create path; the store additionally holds a unique index on complaint_id
// so two racing creates cannot both insert.
type Repository interface {
	Save(ctx context.Context, card *JobCard) error
	Update(ctx context.Context, card *JobCard) error
	GetByID(ctx context.Context, id uint) (*JobCard, error)
	GetByComplaintID(ctx context.Context, complaintID uint) (*JobCard, error)
}
