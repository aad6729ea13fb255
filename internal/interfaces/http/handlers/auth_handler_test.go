package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
	"github.com/arms237/backend-vehicleShop/internal/usecases"
	"github.com/arms237/backend-vehicleShop/pkg/crypto"
	"github.com/arms237/backend-vehicleShop/pkg/jwt"
	"github.com/arms237/backend-vehicleShop/pkg/mailer"
)

func newAuthRouter(users *userRepoStub) (*gin.Engine, *AuthHandler) {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewAuthUsecase(
		users,
		newRoleRepoStub(),
		uowStub{},
		jwt.NewService("test-secret", time.Hour),
		mailer.New(mailer.Config{}),
	)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.Use(middleware.LocaleMiddleware())
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/verify", h.VerifyEmail)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/forgot-password", h.ForgotPassword)
	r.POST("/auth/reset-password", h.ResetPassword)
	return r, h
}

func postJSON(t *testing.T, r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SignupVerifyLogin(t *testing.T) {
	users := newUserRepoStub()
	r, _ := newAuthRouter(users)

	w := postJSON(t, r, "/auth/signup", `{"email":"ana@example.com","firstName":"Ana","lastName":"Rossi","password":"Str0ngPass","preferredLanguage":"en"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var signup struct {
		Message string              `json:"message"`
		User    entities.PublicUser `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &signup); err != nil {
		t.Fatalf("unmarshal signup response: %v", err)
	}
	if signup.User.Email != "ana@example.com" || signup.User.IsVerified {
		t.Fatalf("unexpected signup user: %+v", signup.User)
	}
	if signup.User.Role != "Client" {
		t.Fatalf("expected translated role Client, got %q", signup.User.Role)
	}

	// login before verification is rejected
	w = postJSON(t, r, "/auth/login", `{"email":"ana@example.com","password":"Str0ngPass"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before verification, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(domainerrors.CodeEmailNotVerified)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	stored, err := users.GetByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if !stored.VerificationToken.Valid {
		t.Fatal("verification token not set")
	}

	w = postJSON(t, r, "/auth/verify?token="+stored.VerificationToken.String, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var verify struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &verify); err != nil {
		t.Fatalf("unmarshal verify response: %v", err)
	}
	if verify.Token == "" {
		t.Fatal("verify did not open a session")
	}

	w = postJSON(t, r, "/auth/login", `{"email":"ana@example.com","password":"Str0ngPass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	users := newUserRepoStub()
	hash, _ := crypto.HashPassword("Str0ngPass")
	users.users[uuid.New()] = &entities.User{
		ID:           uuid.New(),
		Email:        "bob@example.com",
		PasswordHash: hash,
		IsVerified:   true,
	}
	r, _ := newAuthRouter(users)

	// wrong password and unknown email produce the same code
	for _, body := range []string{
		`{"email":"bob@example.com","password":"WrongPass1"}`,
		`{"email":"ghost@example.com","password":"Str0ngPass"}`,
	} {
		w := postJSON(t, r, "/auth/login", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(domainerrors.CodeInvalidCredentials)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	}
}

func TestAuthHandler_Signup_WeakPassword(t *testing.T) {
	r, _ := newAuthRouter(newUserRepoStub())

	w := postJSON(t, r, "/auth/signup", `{"email":"ana@example.com","firstName":"Ana","lastName":"Rossi","password":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_ForgotAndResetPassword(t *testing.T) {
	users := newUserRepoStub()
	hash, _ := crypto.HashPassword("Str0ngPass")
	id := uuid.New()
	users.users[id] = &entities.User{
		ID:           id,
		Email:        "ana@example.com",
		PasswordHash: hash,
		IsVerified:   true,
	}
	r, _ := newAuthRouter(users)

	w := postJSON(t, r, "/auth/forgot-password", `{"email":"ana@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	stored := users.users[id]
	if !stored.ResetPasswordToken.Valid {
		t.Fatal("reset token not set")
	}

	w = postJSON(t, r, "/auth/reset-password", `{"token":"`+stored.ResetPasswordToken.String+`","password":"N3wStrongPass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if users.users[id].ResetPasswordToken.Valid {
		t.Fatal("reset token not cleared")
	}
	if !crypto.CheckPassword("N3wStrongPass", users.users[id].PasswordHash) {
		t.Fatal("new password does not match stored hash")
	}
}

func TestAuthHandler_ResetPassword_ExpiredToken(t *testing.T) {
	users := newUserRepoStub()
	id := uuid.New()
	users.users[id] = &entities.User{
		ID:                    id,
		Email:                 "ana@example.com",
		IsVerified:            true,
		ResetPasswordToken:    null.StringFrom("stale-token"),
		ResetPasswordExpireAt: null.TimeFrom(time.Now().Add(-time.Minute)),
	}
	r, _ := newAuthRouter(users)

	w := postJSON(t, r, "/auth/reset-password", `{"token":"stale-token","password":"N3wStrongPass"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := newUserRepoStub()
	id := uuid.New()
	users.users[id] = &entities.User{
		ID:         id,
		Email:      "ana@example.com",
		IsVerified: true,
		Role:       &entities.Role{ID: uuid.New(), Name: entities.RoleAdmin},
	}

	uc := usecases.NewAuthUsecase(users, newRoleRepoStub(), uowStub{},
		jwt.NewService("test-secret", time.Hour), mailer.New(mailer.Config{}))
	h := NewAuthHandler(uc)

	r := gin.New()
	r.Use(middleware.LocaleMiddleware())
	r.GET("/auth/profile", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		h.Profile(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/profile?lang=en", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var public entities.PublicUser
	if err := json.Unmarshal(w.Body.Bytes(), &public); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if public.Role != "Administrator" {
		t.Fatalf("expected Administrator for lang=en, got %q", public.Role)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("passwordHash")) {
		t.Fatalf("profile leaked credentials: %s", w.Body.String())
	}
}
