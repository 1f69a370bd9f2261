package usecases

import (
	"context"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/jobcard"
	"fieldserve/internal/shared/logger"
)

type mockJobCardRepository struct {
	SaveFunc             func(ctx context.Context, card *jobcard.JobCard) error
	UpdateFunc           func(ctx context.Context, card *jobcard.JobCard) error
	GetByIDFunc          func(ctx context.Context, id uint) (*jobcard.JobCard, error)
	GetByComplaintIDFunc func(ctx context.Context, complaintID uint) (*jobcard.JobCard, error)
}

func (m *mockJobCardRepository) Save(ctx context.Context, card *jobcard.JobCard) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, card)
	}
	return nil
}

func (m *mockJobCardRepository) Update(ctx context.Context, card *jobcard.JobCard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	return nil
}

func (m *mockJobCardRepository) GetByID(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobCardRepository) GetByComplaintID(ctx context.Context, complaintID uint) (*jobcard.JobCard, error) {
	if m.GetByComplaintIDFunc != nil {
		return m.GetByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

type mockComplaintRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*complaint.Complaint, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) GetByCode(ctx context.Context, code string) (*complaint.Complaint, error) {
	return nil, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	return nil, 0, nil
}

func (m *mockComplaintRepository) CountByStatus(ctx context.Context, dealerID uint) (map[vo.Status]int64, error) {
	return nil, nil
}

type mockAssignmentRepository struct {
	GetActiveByComplaintIDFunc func(ctx context.Context, complaintID uint) (*complaint.Assignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *complaint.Assignment) error {
	return nil
}

func (m *mockAssignmentRepository) DeactivateActive(ctx context.Context, complaintID uint) (int64, error) {
	return 0, nil
}

func (m *mockAssignmentRepository) GetActiveByComplaintID(ctx context.Context, complaintID uint) (*complaint.Assignment, error) {
	if m.GetActiveByComplaintIDFunc != nil {
		return m.GetActiveByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) ActiveComplaintIDsByTechnician(ctx context.Context, technicianID uint) ([]uint, error) {
	return nil, nil
}

type mockTechnicianDirectory struct {
	GetByIDFunc      func(ctx context.Context, technicianID uint) (*identity.Technician, error)
	GetByActorIDFunc func(ctx context.Context, actorID uint) (*identity.Technician, error)
}

func (m *mockTechnicianDirectory) GetByID(ctx context.Context, technicianID uint) (*identity.Technician, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockTechnicianDirectory) GetByActorID(ctx context.Context, actorID uint) (*identity.Technician, error) {
	if m.GetByActorIDFunc != nil {
		return m.GetByActorIDFunc(ctx, actorID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
