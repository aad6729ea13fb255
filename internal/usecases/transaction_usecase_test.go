package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/usecases"
)

func floatPtr(f float64) *float64 { return &f }

func TestTransactionUsecase_Create_MissingFieldsKeep500(t *testing.T) {
	uc := usecases.NewTransactionUsecase(new(MockTransactionRepository), new(MockUnitOfWork))

	_, err := uc.Create(context.Background(), &entities.CreateTransactionInput{
		Type:   "sale",
		Status: "pending",
	}, "fr")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
}

func TestTransactionUsecase_Create_RentalDatesLandOnMidnightUTC(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewTransactionUsecase(txRepo, uow)
	ctx := context.Background()
	userID := uuid.New()
	vehicleID := uuid.New()

	uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	var created *entities.Transaction
	txRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Transaction")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entities.Transaction)
			created.ID = uuid.New()
		}).Return(nil).Once()
	txRepo.On("GetByID", ctx, mock.AnythingOfType("uuid.UUID")).
		Return(&entities.Transaction{Status: entities.TransactionPending}, nil).Once()

	_, err := uc.Create(ctx, &entities.CreateTransactionInput{
		TotalAmount: floatPtr(4200),
		Type:        "rental",
		Status:      "pending",
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-15T08:30:00Z",
		UserID:      userID,
		VehicleTransactions: []entities.VehicleTransactionInput{
			{VehicleID: vehicleID, Price: 300, Quantity: 1},
		},
	}, "fr")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), created.StartDate.Time)
	assert.Equal(t, time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC), created.EndDate.Time)
	require.Len(t, created.VehicleTransactions, 1)
	assert.Equal(t, vehicleID, created.VehicleTransactions[0].VehicleID)
}

func TestTransactionUsecase_Create_RejectsUnknownStatus(t *testing.T) {
	uc := usecases.NewTransactionUsecase(new(MockTransactionRepository), new(MockUnitOfWork))

	_, err := uc.Create(context.Background(), &entities.CreateTransactionInput{
		TotalAmount: floatPtr(100),
		Type:        "sale",
		Status:      "shipped",
		UserID:      uuid.New(),
		VehicleTransactions: []entities.VehicleTransactionInput{
			{VehicleID: uuid.New(), Price: 100, Quantity: 1},
		},
	}, "fr")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestTransactionUsecase_UpdateStatus(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	uc := usecases.NewTransactionUsecase(txRepo, new(MockUnitOfWork))
	ctx := context.Background()
	id := uuid.New()

	txRepo.On("UpdateStatus", ctx, id, entities.TransactionCompleted).
		Return(&entities.Transaction{ID: id, Status: entities.TransactionCompleted}, nil).Once()
	tx, err := uc.UpdateStatus(ctx, id, "completed", "fr")
	require.NoError(t, err)
	assert.Equal(t, entities.TransactionCompleted, tx.Status)

	_, err = uc.UpdateStatus(ctx, id, "refunded", "fr")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	txRepo.On("UpdateStatus", ctx, id, entities.TransactionCancelled).
		Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.UpdateStatus(ctx, id, "cancelled", "fr")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestTransactionUsecase_Delete_NotFoundIs404(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewTransactionUsecase(txRepo, uow)
	ctx := context.Background()
	id := uuid.New()

	uow.On("Do", ctx, mock.Anything).Return(nil)
	txRepo.On("Delete", mock.Anything, id).Return(domainerrors.ErrNotFound).Once()
	err := uc.Delete(ctx, id, "fr")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	txRepo.On("Delete", mock.Anything, id).Return(nil).Once()
	require.NoError(t, uc.Delete(ctx, id, "fr"))
}
