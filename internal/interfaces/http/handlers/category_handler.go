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

type CategoryService interface {
	Create(ctx context.Context, input *entities.CreateCategoryInput, lang string) (*entities.Category, error)
	Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCategoryInput, lang string) (*entities.Category, error)
	Delete(ctx context.Context, id uuid.UUID, lang string) error
}

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryUsecase CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryUsecase CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

// List returns all categories with every translation
// GET /category/all
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// Get returns one category
// GET /category/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryUsecase.Get(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

// Create registers a category with its translations
// POST /category/create
func (h *CategoryHandler) Create(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.categoryUsecase.Create(c.Request.Context(), &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, i18n.T(lang, i18n.KeyCategoryCreated), gin.H{
		"category": category,
	})
}

// Update overwrites a category; provided translations replace the existing set
// PUT /category/update/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.categoryUsecase.Update(c.Request.Context(), id, &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyCategoryUpdated), gin.H{
		"category": category,
	})
}

// Delete removes a category and its translations
// DELETE /category/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryUsecase.Delete(c.Request.Context(), id, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyCategoryDeleted), nil)
}
