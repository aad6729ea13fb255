package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*entities.User, error)
	GetByResetToken(ctx context.Context, token string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.User, error)
}

// RoleRepository defines role lookup and creation
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Role, error)
	// GetOrCreate returns the role with the given name, creating it on
	// first use
	GetOrCreate(ctx context.Context, name string) (*entities.Role, error)
}
