package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldserve/internal/domain/customer"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
	"fieldserve/internal/shared/errors"
)

// CustomerDirectory is the gorm-backed read side of the customer book. The
// dealer id is always part of the lookup so one account can never read
// another account's customers.
type CustomerDirectory struct {
	db *gorm.DB
}

func NewCustomerDirectory(gdb *gorm.DB) *CustomerDirectory {
	return &CustomerDirectory{db: gdb}
}

func (r *CustomerDirectory) GetByID(ctx context.Context, dealerID, customerID uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND dealer_id = ?", customerID, dealerID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &customer.Customer{
		ID:      model.ID,
		Name:    model.Name,
		Phone:   model.Phone,
		Address: model.Address,
		Area:    model.Area,
		City:    model.City,
		Pincode: model.Pincode,
	}, nil
}
