package entities

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Role names
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// Role represents an access role
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// User represents a marketplace account
type User struct {
	ID                    uuid.UUID   `json:"id"`
	FirstName             string      `json:"firstName"`
	LastName              string      `json:"lastName"`
	Email                 string      `json:"email"`
	Phone                 null.String `json:"phone"`
	PasswordHash          string      `json:"-"`
	RoleID                uuid.UUID   `json:"-"`
	Role                  *Role       `json:"role,omitempty"`
	PreferredLanguage     string      `json:"preferredLanguage"`
	IsVerified            bool        `json:"isVerified"`
	VerificationToken     null.String `json:"-"`
	ResetPasswordToken    null.String `json:"-"`
	ResetPasswordExpireAt null.Time   `json:"-"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// RoleName returns the role name or empty when the role is not loaded
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// PublicUser is the projection returned to callers: no password, no tokens
type PublicUser struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Phone             null.String `json:"phone,omitempty"`
	Role              string      `json:"role"`
	IsVerified        bool        `json:"isVerified"`
	PreferredLanguage string      `json:"preferredLanguage"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// Public builds the caller-facing projection of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Phone:             u.Phone,
		Role:              u.RoleName(),
		IsVerified:        u.IsVerified,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}

// SignupInput carries the signup request fields
type SignupInput struct {
	Email             string `json:"email" binding:"required,email"`
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	Phone             string `json:"phone"`
	Password          string `json:"password" binding:"required"`
	PreferredLanguage string `json:"preferredLanguage"`
}

var (
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordSpecial = regexp.MustCompile(`[\d\W_]`)
)

// ValidPassword reports whether a password satisfies the policy: at least 8
// characters with a lowercase, an uppercase and a digit or symbol.
func ValidPassword(password string) bool {
	return len(password) >= 8 &&
		passwordLower.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordSpecial.MatchString(password)
}

// LoginInput carries the login request fields
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordInput carries the password-reset request
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput carries the password-reset completion
type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}
