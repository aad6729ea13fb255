package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/domain/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

// UserUsecase handles account administration
type UserUsecase struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	uow      repositories.UnitOfWork
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository, uow repositories.UnitOfWork) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, roleRepo: roleRepo, uow: uow}
}

// List returns all accounts, newest first
func (u *UserUsecase) List(ctx context.Context) ([]*entities.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return users, nil
}

// Get returns one account
func (u *UserUsecase) Get(ctx context.Context, id uuid.UUID, lang string) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyUserNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// UpdateRole assigns an existing role to an account
func (u *UserUsecase) UpdateRole(ctx context.Context, id uuid.UUID, roleName, lang string) (*entities.User, error) {
	user, err := u.Get(ctx, id, lang)
	if err != nil {
		return nil, err
	}

	role, err := u.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyRoleNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}

	user.RoleID = role.ID
	user.Role = role
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return u.Get(ctx, id, lang)
}

// Delete removes an account
func (u *UserUsecase) Delete(ctx context.Context, id uuid.UUID, lang string) error {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.userRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(i18n.T(lang, i18n.KeyUserNotFound))
		}
		return domainerrors.InternalError(err)
	}
	return nil
}
