package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/domain/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/crypto"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
	"github.com/arms237/backend-vehicleShop/pkg/jwt"
	"github.com/arms237/backend-vehicleShop/pkg/logger"
	"github.com/arms237/backend-vehicleShop/pkg/mailer"
)

// Accounts default to Italian unless signup states otherwise.
const signupDefaultLanguage = "it"

const resetTokenTTL = time.Hour

// AuthUsecase handles signup, email verification, login and password resets
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	roleRepo   repositories.RoleRepository
	uow        repositories.UnitOfWork
	jwtService *jwt.Service
	mail       *mailer.Mailer
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.Service,
	mail *mailer.Mailer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		uow:        uow,
		jwtService: jwtService,
		mail:       mail,
	}
}

// sendMail delivers an email without blocking the request. Failures are
// logged, never surfaced to the caller.
func (u *AuthUsecase) sendMail(kind string, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			logger.Error(ctx, "failed to send "+kind+" email", zap.Error(err))
		}
	}()
}

// Signup registers a new account and sends a verification email. When the
// email is already registered but still unverified it rotates the token,
// resends the email and reports the resend to the caller. The chosen
// preferred language is returned alongside the user so the caller can
// localize the response with it.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, string, error) {
	lang := i18n.Resolve(input.PreferredLanguage)
	if input.PreferredLanguage == "" {
		lang = signupDefaultLanguage
	}

	if !entities.ValidPassword(input.Password) {
		return nil, lang, domainerrors.BadRequest(i18n.T(lang, i18n.KeyWeakPassword))
	}

	verificationToken := crypto.NewOpaqueToken()

	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, lang, domainerrors.InternalError(err)
	}
	if existing != nil {
		if !existing.IsVerified {
			existing.VerificationToken = null.StringFrom(verificationToken)
			if err := u.userRepo.Update(ctx, existing); err != nil {
				return nil, lang, domainerrors.InternalError(err)
			}
			u.sendMail("verification", func(ctx context.Context) error {
				return u.mail.SendVerificationEmail(ctx, existing.Email, verificationToken, lang)
			})
			return nil, lang, domainerrors.BadRequest(i18n.T(lang, i18n.KeyEmailNotVerifiedResend))
		}
		return nil, lang, domainerrors.Conflict(i18n.T(lang, i18n.KeyEmailAlreadyUsed))
	}

	if input.Phone != "" {
		if _, err := u.userRepo.GetByPhone(ctx, input.Phone); err == nil {
			return nil, lang, domainerrors.Conflict(i18n.T(lang, i18n.KeyPhoneAlreadyUsed))
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, lang, domainerrors.InternalError(err)
		}
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, lang, domainerrors.InternalError(err)
	}

	user := &entities.User{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		PasswordHash:      passwordHash,
		PreferredLanguage: lang,
		VerificationToken: null.StringFrom(verificationToken),
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		role, err := u.roleRepo.GetOrCreate(txCtx, entities.RoleClient)
		if err != nil {
			return err
		}
		user.RoleID = role.ID
		user.Role = role
		return u.userRepo.Create(txCtx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, lang, domainerrors.Conflict(i18n.T(lang, i18n.KeyEmailAlreadyUsed))
		}
		return nil, lang, domainerrors.InternalError(err)
	}

	u.sendMail("verification", func(ctx context.Context) error {
		return u.mail.SendVerificationEmail(ctx, user.Email, verificationToken, lang)
	})

	return user, lang, nil
}

// VerifyEmail marks the account behind the token as verified and logs the
// user in by returning a session token
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token, lang string) (*entities.User, string, error) {
	if token == "" {
		return nil, "", domainerrors.BadRequest(i18n.T(lang, i18n.KeyInvalidToken))
	}

	user, err := u.userRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", domainerrors.BadRequest(i18n.T(lang, i18n.KeyInvalidToken))
		}
		return nil, "", domainerrors.InternalError(err)
	}

	user.IsVerified = true
	user.VerificationToken = null.String{}
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, "", domainerrors.InternalError(err)
	}

	sessionToken, err := u.jwtService.Generate(user.ID, user.Email, user.RoleName())
	if err != nil {
		return nil, "", domainerrors.InternalError(err)
	}
	return user, sessionToken, nil
}

// Login authenticates a verified account and returns a session token. Bad
// email and bad password are indistinguishable to the caller; an unverified
// account gets its own answer.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput, lang string) (*entities.User, string, error) {
	invalidCredentials := domainerrors.NewAppError(
		http.StatusUnauthorized, domainerrors.CodeInvalidCredentials,
		i18n.T(lang, i18n.KeyInvalidCredentials), domainerrors.ErrInvalidCredentials)

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", invalidCredentials
		}
		return nil, "", domainerrors.InternalError(err)
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, "", invalidCredentials
	}

	if !user.IsVerified {
		return nil, "", domainerrors.NewAppError(
			http.StatusUnauthorized, domainerrors.CodeEmailNotVerified,
			i18n.T(lang, i18n.KeyEmailNotVerified), domainerrors.ErrEmailNotVerified)
	}

	token, err := u.jwtService.Generate(user.ID, user.Email, user.RoleName())
	if err != nil {
		return nil, "", domainerrors.InternalError(err)
	}
	return user, token, nil
}

// ForgotPassword issues a one hour reset token and emails it
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email, lang string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest(i18n.T(lang, i18n.KeyUserNotFound))
		}
		return domainerrors.InternalError(err)
	}

	resetToken := crypto.NewOpaqueToken()
	user.ResetPasswordToken = null.StringFrom(resetToken)
	user.ResetPasswordExpireAt = null.TimeFrom(time.Now().Add(resetTokenTTL))
	if err := u.userRepo.Update(ctx, user); err != nil {
		return domainerrors.InternalError(err)
	}

	u.sendMail("password reset", func(ctx context.Context) error {
		return u.mail.SendResetPasswordEmail(ctx, user.Email, resetToken, lang)
	})
	return nil
}

// ResetPassword sets a new password when the reset token is known and still
// fresh, then clears the token
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput, lang string) (*entities.User, error) {
	invalidToken := domainerrors.BadRequest(i18n.T(lang, i18n.KeyInvalidToken))

	user, err := u.userRepo.GetByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidToken
		}
		return nil, domainerrors.InternalError(err)
	}
	if user.ResetPasswordExpireAt.Valid && user.ResetPasswordExpireAt.Time.Before(time.Now()) {
		return nil, invalidToken
	}

	if !entities.ValidPassword(input.Password) {
		return nil, domainerrors.BadRequest(i18n.T(lang, i18n.KeyWeakPassword))
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user.PasswordHash = passwordHash
	user.ResetPasswordToken = null.String{}
	user.ResetPasswordExpireAt = null.Time{}
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// Profile returns the account behind a session
func (u *AuthUsecase) Profile(ctx context.Context, userID uuid.UUID, lang string) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(i18n.T(lang, i18n.KeyUserNotFound))
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}
