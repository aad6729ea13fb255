package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/models"
)

// TransactionRepository implements transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a transaction with its line items
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	m := r.toModel(tx)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TransactionRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("User.Role").
		Preload("VehicleTransactions").
		Preload("VehicleTransactions.Vehicle.Images").
		Preload("VehicleTransactions.Vehicle.Translations")
}

// GetByID gets a transaction by ID with user and line items
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	var m models.Transaction
	err := r.withRelations(GetDB(ctx, r.db).WithContext(ctx)).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus moves a transaction to the given lifecycle state and returns
// the updated row
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) (*entities.Transaction, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a transaction and its line items
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("transaction_id = ?", id).Delete(&models.VehicleTransaction{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all transactions, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]*entities.Transaction, error) {
	return r.list(ctx, nil)
}

// ListByUser lists the transactions of one user
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	cond := func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) }
	return r.list(ctx, cond)
}

// ListByVehicle lists the transactions holding a line item for one vehicle.
// The loaded line items are narrowed to that vehicle.
func (r *TransactionRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entities.Transaction, error) {
	sub := GetDB(ctx, r.db).Model(&models.VehicleTransaction{}).
		Select("transaction_id").Where("vehicle_id = ?", vehicleID)
	cond := func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", sub).
			Preload("VehicleTransactions", "vehicle_id = ?", vehicleID)
	}
	return r.list(ctx, cond)
}

func (r *TransactionRepository) list(ctx context.Context, cond func(*gorm.DB) *gorm.DB) ([]*entities.Transaction, error) {
	query := r.withRelations(GetDB(ctx, r.db).WithContext(ctx)).Order("created_at DESC")
	if cond != nil {
		query = cond(query)
	}

	var txModels []models.Transaction
	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}

	txs := make([]*entities.Transaction, 0, len(txModels))
	for i := range txModels {
		txs = append(txs, r.toEntity(&txModels[i]))
	}
	return txs, nil
}

func (r *TransactionRepository) toModel(tx *entities.Transaction) *models.Transaction {
	items := make([]models.VehicleTransaction, 0, len(tx.VehicleTransactions))
	for _, item := range tx.VehicleTransactions {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		items = append(items, models.VehicleTransaction{
			ID:            id,
			TransactionID: tx.ID,
			VehicleID:     item.VehicleID,
			Price:         item.Price,
			Quantity:      item.Quantity,
		})
	}
	return &models.Transaction{
		ID:                  tx.ID,
		TotalAmount:         tx.TotalAmount,
		Type:                string(tx.Type),
		Status:              string(tx.Status),
		StartDate:           tx.StartDate.Ptr(),
		EndDate:             tx.EndDate.Ptr(),
		UserID:              tx.UserID,
		CreatedAt:           tx.CreatedAt,
		UpdatedAt:           tx.UpdatedAt,
		VehicleTransactions: items,
	}
}

func (r *TransactionRepository) toEntity(m *models.Transaction) *entities.Transaction {
	items := make([]entities.VehicleTransaction, 0, len(m.VehicleTransactions))
	vehicleRepo := NewVehicleRepository(r.db)
	for i := range m.VehicleTransactions {
		item := &m.VehicleTransactions[i]
		e := entities.VehicleTransaction{
			ID:        item.ID,
			VehicleID: item.VehicleID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		if item.Vehicle.ID != uuid.Nil {
			e.Vehicle = vehicleRepo.toEntity(&item.Vehicle)
		}
		items = append(items, e)
	}

	tx := &entities.Transaction{
		ID:                  m.ID,
		TotalAmount:         m.TotalAmount,
		Type:                entities.TransactionType(m.Type),
		Status:              entities.TransactionStatus(m.Status),
		StartDate:           null.TimeFromPtr(m.StartDate),
		EndDate:             null.TimeFromPtr(m.EndDate),
		UserID:              m.UserID,
		VehicleTransactions: items,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.User.ID != uuid.Nil {
		userEntity := NewUserRepository(r.db).toEntity(&m.User)
		pub := userEntity.Public()
		tx.User = &pub
	}
	return tx
}
