package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/pkg/utils"
)

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByPhone(_ context.Context, phone string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Phone.Valid && u.Phone.String == phone {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByVerificationToken(_ context.Context, token string) (*entities.User, error) {
	for _, u := range s.users {
		if u.VerificationToken.Valid && u.VerificationToken.String == token {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByResetToken(_ context.Context, token string) (*entities.User, error) {
	for _, u := range s.users {
		if u.ResetPasswordToken.Valid && u.ResetPasswordToken.String == token {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) List(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

type roleRepoStub struct {
	roles map[string]*entities.Role
}

func newRoleRepoStub() *roleRepoStub {
	return &roleRepoStub{roles: map[string]*entities.Role{}}
}

func (s *roleRepoStub) GetByName(_ context.Context, name string) (*entities.Role, error) {
	r, ok := s.roles[name]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r, nil
}

func (s *roleRepoStub) GetOrCreate(_ context.Context, name string) (*entities.Role, error) {
	if r, ok := s.roles[name]; ok {
		return r, nil
	}
	r := &entities.Role{ID: uuid.New(), Name: name}
	s.roles[name] = r
	return r, nil
}

type brandRepoStub struct {
	brands map[uuid.UUID]*entities.Brand
}

func newBrandRepoStub() *brandRepoStub {
	return &brandRepoStub{brands: map[uuid.UUID]*entities.Brand{}}
}

func (s *brandRepoStub) Create(_ context.Context, brand *entities.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	s.brands[brand.ID] = brand
	return nil
}

func (s *brandRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Brand, error) {
	b, ok := s.brands[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return b, nil
}

func (s *brandRepoStub) GetBySlug(_ context.Context, slug string) (*entities.Brand, error) {
	for _, b := range s.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *brandRepoStub) Update(_ context.Context, brand *entities.Brand, replaceTranslations bool) error {
	existing, ok := s.brands[brand.ID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if !replaceTranslations {
		brand.Translations = existing.Translations
	}
	s.brands[brand.ID] = brand
	return nil
}

func (s *brandRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.brands[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.brands, id)
	return nil
}

func (s *brandRepoStub) List(_ context.Context) ([]*entities.Brand, error) {
	out := make([]*entities.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		out = append(out, b)
	}
	return out, nil
}

type categoryRepoStub struct {
	categories map[uuid.UUID]*entities.Category
}

func newCategoryRepoStub() *categoryRepoStub {
	return &categoryRepoStub{categories: map[uuid.UUID]*entities.Category{}}
}

func (s *categoryRepoStub) Create(_ context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	s.categories[category.ID] = category
	return nil
}

func (s *categoryRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return c, nil
}

func (s *categoryRepoStub) GetBySlug(_ context.Context, slug string) (*entities.Category, error) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *categoryRepoStub) Update(_ context.Context, category *entities.Category, replaceTranslations bool) error {
	existing, ok := s.categories[category.ID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if !replaceTranslations {
		category.Translations = existing.Translations
	}
	s.categories[category.ID] = category
	return nil
}

func (s *categoryRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.categories[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *categoryRepoStub) List(_ context.Context) ([]*entities.Category, error) {
	out := make([]*entities.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

type supplierRepoStub struct {
	suppliers map[uuid.UUID]*entities.Supplier
}

func newSupplierRepoStub() *supplierRepoStub {
	return &supplierRepoStub{suppliers: map[uuid.UUID]*entities.Supplier{}}
}

func (s *supplierRepoStub) Create(_ context.Context, supplier *entities.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	s.suppliers[supplier.ID] = supplier
	return nil
}

func (s *supplierRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Supplier, error) {
	sup, ok := s.suppliers[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return sup, nil
}

func (s *supplierRepoStub) GetByName(_ context.Context, name string) (*entities.Supplier, error) {
	for _, sup := range s.suppliers {
		if sup.Name == name {
			return sup, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *supplierRepoStub) Update(_ context.Context, supplier *entities.Supplier, replaceTranslations bool) error {
	existing, ok := s.suppliers[supplier.ID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if !replaceTranslations {
		supplier.Translations = existing.Translations
	}
	s.suppliers[supplier.ID] = supplier
	return nil
}

func (s *supplierRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.suppliers[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.suppliers, id)
	return nil
}

func (s *supplierRepoStub) List(_ context.Context) ([]*entities.Supplier, error) {
	out := make([]*entities.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		out = append(out, sup)
	}
	return out, nil
}

type transactionRepoStub struct {
	transactions map[uuid.UUID]*entities.Transaction
}

func newTransactionRepoStub() *transactionRepoStub {
	return &transactionRepoStub{transactions: map[uuid.UUID]*entities.Transaction{}}
}

func (s *transactionRepoStub) Create(_ context.Context, tx *entities.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	s.transactions[tx.ID] = tx
	return nil
}

func (s *transactionRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return tx, nil
}

func (s *transactionRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.TransactionStatus) (*entities.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	tx.Status = status
	return tx, nil
}

func (s *transactionRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.transactions[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *transactionRepoStub) List(_ context.Context) ([]*entities.Transaction, error) {
	out := make([]*entities.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, tx)
	}
	return out, nil
}

func (s *transactionRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	var out []*entities.Transaction
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *transactionRepoStub) ListByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*entities.Transaction, error) {
	var out []*entities.Transaction
	for _, tx := range s.transactions {
		for _, vt := range tx.VehicleTransactions {
			if vt.VehicleID == vehicleID {
				out = append(out, tx)
				break
			}
		}
	}
	return out, nil
}

type vehicleRepoStub struct {
	vehicles map[uuid.UUID]*entities.Vehicle
}

func newVehicleRepoStub() *vehicleRepoStub {
	return &vehicleRepoStub{vehicles: map[uuid.UUID]*entities.Vehicle{}}
}

func (s *vehicleRepoStub) Create(_ context.Context, vehicle *entities.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	s.vehicles[vehicle.ID] = vehicle
	return nil
}

func (s *vehicleRepoStub) GetByID(_ context.Context, id uuid.UUID, _ string) (*entities.Vehicle, error) {
	v, ok := s.vehicles[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return v, nil
}

func (s *vehicleRepoStub) Update(_ context.Context, vehicle *entities.Vehicle, _, _ bool) error {
	if _, ok := s.vehicles[vehicle.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.vehicles[vehicle.ID] = vehicle
	return nil
}

func (s *vehicleRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.vehicles[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.vehicles, id)
	return nil
}

func (s *vehicleRepoStub) List(_ context.Context, _ string, _ utils.PaginationParams) ([]*entities.Vehicle, int64, error) {
	out := make([]*entities.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (s *vehicleRepoStub) ListByCategory(_ context.Context, categoryID uuid.UUID, _ string) ([]*entities.Vehicle, error) {
	var out []*entities.Vehicle
	for _, v := range s.vehicles {
		if v.CategoryID == categoryID {
			out = append(out, v)
		}
	}
	return out, nil
}
