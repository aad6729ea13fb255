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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := r.toModel(user)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return translateDBError(err)
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID with its role
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Role").Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getByField(ctx, "email = ?", email)
}

// GetByPhone gets a user by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	return r.getByField(ctx, "phone = ?", phone)
}

// GetByVerificationToken gets a user by its pending verification token
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*entities.User, error) {
	return r.getByField(ctx, "verification_token = ?", token)
}

// GetByResetToken gets a user by its password reset token
func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*entities.User, error) {
	return r.getByField(ctx, "reset_password_token = ?", token)
}

func (r *UserRepository) getByField(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var m models.User
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Role").Where(query, arg).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update saves the full user row
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Select("first_name", "last_name", "email", "phone", "password_hash",
			"role_id", "preferred_language", "is_verified",
			"verification_token", "reset_password_token", "reset_password_expire_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with their roles, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).Preload("Role").
		Order("created_at DESC").Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.toEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) toModel(user *entities.User) *models.User {
	return &models.User{
		ID:                    user.ID,
		FirstName:             user.FirstName,
		LastName:              user.LastName,
		Email:                 user.Email,
		Phone:                 user.Phone.Ptr(),
		PasswordHash:          user.PasswordHash,
		RoleID:                user.RoleID,
		PreferredLanguage:     user.PreferredLanguage,
		IsVerified:            user.IsVerified,
		VerificationToken:     user.VerificationToken.Ptr(),
		ResetPasswordToken:    user.ResetPasswordToken.Ptr(),
		ResetPasswordExpireAt: user.ResetPasswordExpireAt.Ptr(),
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:                    m.ID,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Email:                 m.Email,
		Phone:                 null.StringFromPtr(m.Phone),
		PasswordHash:          m.PasswordHash,
		RoleID:                m.RoleID,
		PreferredLanguage:     m.PreferredLanguage,
		IsVerified:            m.IsVerified,
		VerificationToken:     null.StringFromPtr(m.VerificationToken),
		ResetPasswordToken:    null.StringFromPtr(m.ResetPasswordToken),
		ResetPasswordExpireAt: null.TimeFromPtr(m.ResetPasswordExpireAt),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.Role.ID != uuid.Nil {
		u.Role = &entities.Role{ID: m.Role.ID, Name: m.Role.Name}
	}
	return u
}
