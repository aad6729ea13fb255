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
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

type UserService interface {
	List(ctx context.Context) ([]*entities.User, error)
	Get(ctx context.Context, id uuid.UUID, lang string) (*entities.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, roleName, lang string) (*entities.User, error)
	Delete(ctx context.Context, id uuid.UUID, lang string) error
}

// UserHandler handles account administration endpoints
type UserHandler struct {
	userUsecase UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase UserService) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// List returns the public projections of every account
// GET /user/all
func (h *UserHandler) List(c *gin.Context) {
	lang := middleware.Lang(c)

	users, err := h.userUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	public := make([]entities.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, publicUser(u, lang))
	}
	response.Success(c, http.StatusOK, public)
}

// Get returns the public projection of one account
// GET /user/:id
func (h *UserHandler) Get(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, publicUser(user, lang))
}

type updateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole moves an account to another role
// PATCH /user/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input updateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.UpdateRole(c.Request.Context(), id, input.Role, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyRoleUpdated), gin.H{
		"user": publicUser(user, lang),
	})
}

// Delete removes an account
// DELETE /user/delete/:id
func (h *UserHandler) Delete(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyUserDeleted), nil)
}
