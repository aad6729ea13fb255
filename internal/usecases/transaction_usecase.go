package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/domain/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

// TransactionUsecase handles sale and rental orders
type TransactionUsecase struct {
	transactionRepo repositories.TransactionRepository
	uow             repositories.UnitOfWork
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(transactionRepo repositories.TransactionRepository, uow repositories.UnitOfWork) *TransactionUsecase {
	return &TransactionUsecase{transactionRepo: transactionRepo, uow: uow}
}

// Create records an order with its line items. Missing required fields keep
// their historical 500 answer. Rental dates are date-only values landing on
// midnight UTC.
func (u *TransactionUsecase) Create(ctx context.Context, input *entities.CreateTransactionInput, lang string) (*entities.Transaction, error) {
	if input.TotalAmount == nil || input.Type == "" || input.Status == "" ||
		input.UserID == uuid.Nil || len(input.VehicleTransactions) == 0 {
		return nil, domainerrors.InternalErrorMessage(i18n.T(lang, i18n.KeyMissingFields), domainerrors.ErrInvalidInput)
	}
	if !entities.ValidTransactionStatus(input.Status) {
		return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyIDAndStatusRequired))
	}

	tx := &entities.Transaction{
		TotalAmount: *input.TotalAmount,
		Type:        entities.TransactionType(input.Type),
		Status:      entities.TransactionStatus(input.Status),
		UserID:      input.UserID,
	}
	if input.StartDate != "" {
		t, err := parseDate(input.StartDate)
		if err != nil {
			return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyMissingFields))
		}
		tx.StartDate = null.TimeFrom(t)
	}
	if input.EndDate != "" {
		t, err := parseDate(input.EndDate)
		if err != nil {
			return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyMissingFields))
		}
		tx.EndDate = null.TimeFrom(t)
	}
	for _, item := range input.VehicleTransactions {
		tx.VehicleTransactions = append(tx.VehicleTransactions, entities.VehicleTransaction{
			VehicleID: item.VehicleID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.transactionRepo.Create(txCtx, tx)
	})
	if err != nil {
		return nil, domainerrors.InternalErrorMessage(i18n.T(lang, i18n.KeyInternalError), err)
	}
	return u.Get(ctx, tx.ID, lang)
}

// Get returns one transaction with user and line items
func (u *TransactionUsecase) Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Transaction, error) {
	tx, err := u.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyTransactionNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return tx, nil
}

// List returns all transactions
func (u *TransactionUsecase) List(ctx context.Context) ([]*entities.Transaction, error) {
	txs, err := u.transactionRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return txs, nil
}

// ListByUser returns the transactions of one user
func (u *TransactionUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	txs, err := u.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return txs, nil
}

// ListByVehicle returns the transactions holding a line item for one vehicle
func (u *TransactionUsecase) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entities.Transaction, error) {
	txs, err := u.transactionRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return txs, nil
}

// UpdateStatus moves a transaction to another lifecycle state
func (u *TransactionUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string, lang string) (*entities.Transaction, error) {
	if !entities.ValidTransactionStatus(status) {
		return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyIDAndStatusRequired))
	}
	tx, err := u.transactionRepo.UpdateStatus(ctx, id, entities.TransactionStatus(status))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyTransactionNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return tx, nil
}

// Delete removes a transaction and its line items
func (u *TransactionUsecase) Delete(ctx context.Context, id uuid.UUID, lang string) error {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.transactionRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyTransactionNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}
