package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
)

// TransactionRepository defines transaction data operations. Reads load the
// user and the line items with their vehicles.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) (*entities.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entities.Transaction, error)
}
