package usecases

import (
	"context"
	"time"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/domain/customer"
	"fieldserve/internal/domain/identity"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

const remarkComplaintRegistered = "Complaint registered"

type CreateComplaintCommand struct {
	Actor        identity.Actor
	DealerID     uint // required for admin actors, ignored for dealers
	CustomerID   *uint
	Title        string
	Description  string
	Category     string
	Priority     string
	Source       string
	Address      string
	Area         string
	City         string
	Landmark     string
	Pincode      string
	ContactName  string
	ContactPhone string
}

type CreateComplaintResult struct {
	ComplaintID uint      `json:"complaint_id"`
	Code        string    `json:"code"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	historyRepo   complaint.HistoryRepository
	customers     customer.Directory
	codeGen       complaint.CodeGenerator
	txManager     TransactionManager
	dispatcher    events.EventDispatcher
	logger        logger.Interface
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	historyRepo complaint.HistoryRepository,
	customers customer.Directory,
	codeGen complaint.CodeGenerator,
	txManager TransactionManager,
	dispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateComplaintUseCase {
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		historyRepo:   historyRepo,
		customers:     customers,
		codeGen:       codeGen,
		txManager:     txManager,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error) {
	uc.logger.Infow("executing create complaint use case", "title", cmd.Title, "actor_id", cmd.Actor.ID)

	dealerID, err := uc.resolveDealerID(cmd)
	if err != nil {
		uc.logger.Errorw("invalid create complaint command", "error", err)
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create complaint command", "error", err)
		return nil, err
	}

	site := complaint.Site{
		Address:  cmd.Address,
		Area:     cmd.Area,
		City:     cmd.City,
		Landmark: cmd.Landmark,
		Pincode:  cmd.Pincode,
	}
	contactName := cmd.ContactName
	contactPhone := cmd.ContactPhone

	if cmd.CustomerID != nil {
		cust, err := uc.customers.GetByID(ctx, dealerID, *cmd.CustomerID)
		if err != nil {
			uc.logger.Errorw("failed to resolve customer", "customer_id", *cmd.CustomerID, "error", err)
			return nil, errors.NewNotFoundError("customer not found")
		}
		if contactName == "" {
			contactName = cust.Name
		}
		if contactPhone == "" {
			contactPhone = cust.Phone
		}
		if site.Address == "" {
			site.Address = cust.Address
			site.Area = cust.Area
			site.City = cust.City
			site.Pincode = cust.Pincode
		}
	}

	newComplaint, err := complaint.NewComplaint(
		dealerID,
		cmd.Title,
		cmd.Description,
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
		vo.Source(cmd.Source),
		site,
		contactName,
		contactPhone,
	)
	if err != nil {
		uc.logger.Errorw("failed to create complaint entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := uc.codeGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate complaint code", "error", err)
		return nil, errors.NewInternalError("failed to generate complaint code")
	}
	if err := newComplaint.SetCode(code); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	// The row and its initial history entry land together or not at all.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Save(txCtx, newComplaint); err != nil {
			return err
		}

		entry, err := complaint.NewHistoryEntry(
			newComplaint.ID(),
			vo.StatusNew,
			vo.StatusNew,
			cmd.Actor.ID,
			cmd.Actor.Role.String(),
			remarkComplaintRegistered,
		)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to save complaint")
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(complaint.NewComplaintCreatedEvent(newComplaint)); err != nil {
			uc.logger.Warnw("failed to dispatch complaint created event", "error", err)
		}
	}

	uc.logger.Infow("complaint created successfully", "complaint_id", newComplaint.ID(), "code", newComplaint.Code())

	return &CreateComplaintResult{
		ComplaintID: newComplaint.ID(),
		Code:        newComplaint.Code(),
		Status:      newComplaint.Status().String(),
		CreatedAt:   newComplaint.CreatedAt(),
	}, nil
}

func (uc *CreateComplaintUseCase) resolveDealerID(cmd CreateComplaintCommand) (uint, error) {
	switch {
	case cmd.Actor.IsDealer():
		return cmd.Actor.ID, nil
	case cmd.Actor.IsAdmin():
		if cmd.DealerID == 0 {
			return 0, errors.NewValidationError("dealer ID is required for admin-created complaints")
		}
		return cmd.DealerID, nil
	default:
		return 0, errors.NewForbiddenError("technicians cannot register complaints")
	}
}

func (uc *CreateComplaintUseCase) validateCommand(cmd CreateComplaintCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	if !vo.Source(cmd.Source).IsValid() {
		return errors.NewValidationError("invalid source")
	}

	return nil
}
