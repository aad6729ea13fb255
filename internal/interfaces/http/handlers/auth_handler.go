package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/response"
	"github.com/arms237/backend-vehicleShop/internal/metrics"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

type AuthService interface {
	Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, string, error)
	VerifyEmail(ctx context.Context, token, lang string) (*entities.User, string, error)
	Login(ctx context.Context, input *entities.LoginInput, lang string) (*entities.User, string, error)
	ForgotPassword(ctx context.Context, email, lang string) error
	ResetPassword(ctx context.Context, input *entities.ResetPasswordInput, lang string) (*entities.User, error)
	Profile(ctx context.Context, userID uuid.UUID, lang string) (*entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// publicUser builds the caller-facing projection with the role name
// localized for the request language.
func publicUser(u *entities.User, lang string) entities.PublicUser {
	public := u.Public()
	if public.Role != "" {
		public.Role = i18n.T(lang, i18n.RoleKey(public.Role))
	}
	return public
}

// Signup registers a new account and sends the verification email
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, lang, err := h.authUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.SignupCounter.Inc()
	response.Message(c, http.StatusCreated, i18n.T(lang, i18n.KeySignupSuccess), gin.H{
		"user": publicUser(user, lang),
	})
}

// VerifyEmail confirms an account from its one-time token and opens a session
// POST /auth/verify?token=
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	lang := middleware.Lang(c)
	token := c.Query("token")

	user, sessionToken, err := h.authUsecase.VerifyEmail(c.Request.Context(), token, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyVerificationSuccess), gin.H{
		"token": sessionToken,
		"user":  publicUser(user, lang),
	})
}

// Login authenticates an account and returns a session token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), &input, lang)
	if err != nil {
		metrics.LoginCounter.WithLabelValues("failure").Inc()
		response.Error(c, err)
		return
	}

	metrics.LoginCounter.WithLabelValues("success").Inc()
	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyLoginSuccess), gin.H{
		"token": token,
		"user":  publicUser(user, lang),
	})
}

// ForgotPassword starts the password-reset flow
// POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ForgotPassword(c.Request.Context(), input.Email, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyResetEmailSent), nil)
}

// ResetPassword completes the password-reset flow
// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.authUsecase.ResetPassword(c.Request.Context(), &input, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyResetPasswordSuccess), nil)
}

// Profile returns the authenticated account
// GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	lang := middleware.Lang(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized(i18n.T(lang, i18n.KeyInvalidCredentials)))
		return
	}

	user, err := h.authUsecase.Profile(c.Request.Context(), userID, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, publicUser(user, lang))
}
