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

type BrandService interface {
	Create(ctx context.Context, input *entities.CreateBrandInput, lang string) (*entities.Brand, error)
	Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Brand, error)
	List(ctx context.Context) ([]*entities.Brand, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBrandInput, lang string) (*entities.Brand, error)
	Delete(ctx context.Context, id uuid.UUID, lang string) error
}

// BrandHandler handles brand endpoints
type BrandHandler struct {
	brandUsecase BrandService
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandUsecase BrandService) *BrandHandler {
	return &BrandHandler{brandUsecase: brandUsecase}
}

// parseIDParam reads a uuid path parameter, answering 400 when absent or
// malformed. The bool reports whether the handler should continue.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	lang := middleware.Lang(c)
	raw := c.Param(name)
	if raw == "" {
		response.Error(c, domainerrors.BadRequest(i18n.T(lang, i18n.KeyIDRequired)))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(i18n.T(lang, i18n.KeyInvalidUserID)))
		return uuid.Nil, false
	}
	return id, true
}

// List returns all brands with every translation
// GET /brands/all
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.brandUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, brands)
}

// Create registers a brand with its translations
// POST /brands/create
func (h *BrandHandler) Create(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.Create(c.Request.Context(), &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, i18n.T(lang, i18n.KeyBrandCreated), gin.H{
		"brand": brand,
	})
}

// Update overwrites a brand; provided translations replace the existing set
// PUT /brands/update/:id
func (h *BrandHandler) Update(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.Update(c.Request.Context(), id, &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyBrandUpdated), gin.H{
		"brand": brand,
	})
}

// Delete removes a brand and its translations
// DELETE /brands/delete/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.brandUsecase.Delete(c.Request.Context(), id, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyBrandDeleted), nil)
}
