package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionType distinguishes sales from rentals
type TransactionType string

const (
	TransactionSale   TransactionType = "sale"
	TransactionRental TransactionType = "rental"
)

// TransactionStatus is the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// ValidTransactionStatus reports whether s is a known lifecycle state
func ValidTransactionStatus(s string) bool {
	switch TransactionStatus(s) {
	case TransactionPending, TransactionCompleted, TransactionCancelled:
		return true
	}
	return false
}

// VehicleTransaction is one line item of a transaction
type VehicleTransaction struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicleId"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Vehicle   *Vehicle  `json:"vehicle,omitempty"`
}

// Transaction is a sale or rental order placed by a user
type Transaction struct {
	ID                  uuid.UUID            `json:"id"`
	TotalAmount         float64              `json:"totalAmount"`
	Type                TransactionType      `json:"type"`
	Status              TransactionStatus    `json:"status"`
	StartDate           null.Time            `json:"startDate,omitempty"`
	EndDate             null.Time            `json:"endDate,omitempty"`
	UserID              uuid.UUID            `json:"userId"`
	User                *PublicUser          `json:"user,omitempty"`
	VehicleTransactions []VehicleTransaction `json:"vehicleTransactions"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// VehicleTransactionInput is one inbound line item
type VehicleTransactionInput struct {
	VehicleID uuid.UUID `json:"vehicleId" binding:"required"`
	Price     float64   `json:"price" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateTransactionInput carries the transaction creation fields. Dates are
// date-only strings (2006-01-02) and only apply to rentals.
type CreateTransactionInput struct {
	TotalAmount         *float64                  `json:"totalAmount"`
	Type                string                    `json:"type"`
	Status              string                    `json:"status"`
	StartDate           string                    `json:"startDate"`
	EndDate             string                    `json:"endDate"`
	UserID              uuid.UUID                 `json:"userId"`
	VehicleTransactions []VehicleTransactionInput `json:"vehicleTransactions" binding:"omitempty,dive"`
}
