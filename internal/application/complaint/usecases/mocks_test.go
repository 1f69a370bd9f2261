package usecases

import (
	"context"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/customer"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc          func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc        func(ctx context.Context, c *complaint.Complaint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*complaint.Complaint, error)
	GetByCodeFunc     func(ctx context.Context, code string) (*complaint.Complaint, error)
	ListFunc          func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error)
	CountByStatusFunc func(ctx context.Context, dealerID uint) (map[vo.Status]int64, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) GetByCode(ctx context.Context, code string) (*complaint.Complaint, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepository) CountByStatus(ctx context.Context, dealerID uint) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, dealerID)
	}
	return nil, nil
}

type mockAssignmentRepository struct {
	SaveFunc                           func(ctx context.Context, a *complaint.Assignment) error
	DeactivateActiveFunc               func(ctx context.Context, complaintID uint) (int64, error)
	GetActiveByComplaintIDFunc         func(ctx context.Context, complaintID uint) (*complaint.Assignment, error)
	ListByComplaintIDFunc              func(ctx context.Context, complaintID uint) ([]*complaint.Assignment, error)
	ActiveComplaintIDsByTechnicianFunc func(ctx context.Context, technicianID uint) ([]uint, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *complaint.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) DeactivateActive(ctx context.Context, complaintID uint) (int64, error) {
	if m.DeactivateActiveFunc != nil {
		return m.DeactivateActiveFunc(ctx, complaintID)
	}
	return 0, nil
}

func (m *mockAssignmentRepository) GetActiveByComplaintID(ctx context.Context, complaintID uint) (*complaint.Assignment, error) {
	if m.GetActiveByComplaintIDFunc != nil {
		return m.GetActiveByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Assignment, error) {
	if m.ListByComplaintIDFunc != nil {
		return m.ListByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ActiveComplaintIDsByTechnician(ctx context.Context, technicianID uint) ([]uint, error) {
	if m.ActiveComplaintIDsByTechnicianFunc != nil {
		return m.ActiveComplaintIDsByTechnicianFunc(ctx, technicianID)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	AppendFunc            func(ctx context.Context, entry *complaint.HistoryEntry) error
	ListByComplaintIDFunc func(ctx context.Context, complaintID uint) ([]*complaint.HistoryEntry, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *complaint.HistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.HistoryEntry, error) {
	if m.ListByComplaintIDFunc != nil {
		return m.ListByComplaintIDFunc(ctx, complaintID)
	}
	return nil, nil
}

type mockNoteRepository struct {
	SaveFunc              func(ctx context.Context, note *complaint.Note) error
	ListByComplaintIDFunc func(ctx context.Context, complaintID uint) ([]*complaint.Note, error)
}

func (m *mockNoteRepository) Save(ctx context.Context, note *complaint.Note) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, note)
	}
	return nil
}

func (m *mockNoteRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Note, error) {
	if m.ListByComplaintIDFunc != nil {
		return m.ListByComplaintIDFunc(ctx, complaintID)
	}
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

type mockCustomerDirectory struct {
	GetByIDFunc func(ctx context.Context, dealerID, customerID uint) (*customer.Customer, error)
}

func (m *mockCustomerDirectory) GetByID(ctx context.Context, dealerID, customerID uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, dealerID, customerID)
	}
	return nil, nil
}

type mockCodeGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "CMP-20260101-0001", nil
}

// mockTransactionManager runs the callback inline so repository mocks observe
// the same calls they would see inside a real transaction.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	SubscribeFunc  func(eventType string, handler events.EventHandler) error
	StartFunc      func() error
	StopFunc       func() error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(eventType, handler)
	}
	return nil
}

func (m *mockEventDispatcher) Start() error {
	if m.StartFunc != nil {
		return m.StartFunc()
	}
	return nil
}

func (m *mockEventDispatcher) Stop() error {
	if m.StopFunc != nil {
		return m.StopFunc()
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
