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

type SupplierService interface {
	Create(ctx context.Context, input *entities.CreateSupplierInput, lang string) (*entities.Supplier, error)
	Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Supplier, error)
	List(ctx context.Context) ([]*entities.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateSupplierInput, lang string) (*entities.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID, lang string) error
}

// SupplierHandler handles supplier endpoints
type SupplierHandler struct {
	supplierUsecase SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierUsecase SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierUsecase: supplierUsecase}
}

// List returns all suppliers
// GET /supplier/all
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, suppliers)
}

// Get returns one supplier
// GET /supplier/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierUsecase.Get(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, supplier)
}

// Create registers a supplier
// POST /supplier/create
func (h *SupplierHandler) Create(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	supplier, err := h.supplierUsecase.Create(c.Request.Context(), &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, i18n.T(lang, i18n.KeySupplierCreated), gin.H{
		"supplier": supplier,
	})
}

// Update overwrites a supplier
// PUT /supplier/update/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	supplier, err := h.supplierUsecase.Update(c.Request.Context(), id, &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeySupplierUpdated), gin.H{
		"supplier": supplier,
	})
}

// Delete removes a supplier
// DELETE /supplier/delete/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.supplierUsecase.Delete(c.Request.Context(), id, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeySupplierDeleted), nil)
}
