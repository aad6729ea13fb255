package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/response"
	"github.com/arms237/backend-vehicleShop/pkg/i18n"
	"github.com/arms237/backend-vehicleShop/pkg/utils"
)

type VehicleService interface {
	Create(ctx context.Context, input *entities.CreateVehicleInput, lang string) (*entities.Vehicle, error)
	Get(ctx context.Context, id uuid.UUID, translationLang, lang string) (*entities.Vehicle, error)
	List(ctx context.Context, translationLang string, page, limit int) ([]*entities.Vehicle, utils.PaginationMeta, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, translationLang string) ([]*entities.Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateVehicleInput, lang string) (*entities.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID, lang string) error
}

// VehicleHandler handles vehicle endpoints
type VehicleHandler struct {
	vehicleUsecase VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleUsecase VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleUsecase: vehicleUsecase}
}

// List returns all vehicles with translations narrowed to the request language
// GET /vehicle/all
func (h *VehicleHandler) List(c *gin.Context) {
	lang := middleware.Lang(c)

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	vehicles, meta, err := h.vehicleUsecase.List(c.Request.Context(), lang, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyVehicleList), gin.H{
		"vehicles": vehicles,
		"meta":     meta,
	})
}

// Get returns one vehicle with its full relation graph
// GET /vehicle/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleUsecase.Get(c.Request.Context(), id, lang, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyVehicleDetail), gin.H{
		"vehicle": vehicle,
	})
}

// ListByCategory returns the vehicles of one category
// GET /vehicle/category/:id
func (h *VehicleHandler) ListByCategory(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicles, err := h.vehicleUsecase.ListByCategory(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyVehicleList), gin.H{
		"vehicles": vehicles,
	})
}

// Create registers a vehicle with its images and translations
// POST /vehicle/create
func (h *VehicleHandler) Create(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.vehicleUsecase.Create(c.Request.Context(), &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, i18n.T(lang, i18n.KeyVehicleCreated), gin.H{
		"vehicle": vehicle,
	})
}

// Update patches vehicle scalars; provided images and translations replace
// the existing sets
// PUT /vehicle/update/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.vehicleUsecase.Update(c.Request.Context(), id, &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyVehicleUpdated), gin.H{
		"vehicle": vehicle,
	})
}

// Delete removes a vehicle with its images and translations
// DELETE /vehicle/delete/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleUsecase.Delete(c.Request.Context(), id, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyVehicleDeleted), nil)
}
