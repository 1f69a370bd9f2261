// Package customer holds the narrow read contract against the customer
// directory. Customer management itself is out of scope for this core.
package customer

import "context"

// Customer is the display projection the core needs: name and reachability
// for complaint creation and job card snapshotting.
type Customer struct {
	ID      uint
	Name    string
	Phone   string
	Address string
	Area    string
	City    string
	Pincode string
}

// Directory resolves a customer id for the owning dealer account.
type Directory interface {
	GetByID(ctx context.Context, dealerID, customerID uint) (*Customer, error)
}
