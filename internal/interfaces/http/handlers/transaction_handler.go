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

type TransactionService interface {
	Create(ctx context.Context, input *entities.CreateTransactionInput, lang string) (*entities.Transaction, error)
	Get(ctx context.Context, id uuid.UUID, lang string) (*entities.Transaction, error)
	List(ctx context.Context) ([]*entities.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entities.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, lang string) (*entities.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID, lang string) error
}

// TransactionHandler handles sale and rental endpoints
type TransactionHandler struct {
	transactionUsecase TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUsecase TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUsecase: transactionUsecase}
}

// List returns all transactions, newest first
// GET /transaction/all
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.transactionUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, transactions)
}

// Get returns one transaction with its line items
// GET /transaction/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactionUsecase.Get(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transaction)
}

// ListByUser returns the transactions of one account
// GET /transaction/user/:userId
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	transactions, err := h.transactionUsecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transactions)
}

// ListByVehicle returns the transactions touching one vehicle
// GET /transaction/vehicle/:vehicleId
func (h *TransactionHandler) ListByVehicle(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "vehicleId")
	if !ok {
		return
	}

	transactions, err := h.transactionUsecase.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transactions)
}

// Create records a sale or rental with its line items
// POST /transaction/create
func (h *TransactionHandler) Create(c *gin.Context) {
	lang := middleware.Lang(c)

	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	transaction, err := h.transactionUsecase.Create(c.Request.Context(), &input, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.TransactionCounter.WithLabelValues(string(transaction.Type)).Inc()
	response.Success(c, http.StatusCreated, transaction)
}

type updateStatusInput struct {
	Status string `json:"status"`
}

// UpdateStatus overwrites the status of a transaction
// PATCH /transaction/update/:id/status
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	lang := middleware.Lang(c)

	raw := c.Param("id")
	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if raw == "" || input.Status == "" {
		response.Error(c, domainerrors.BadRequest(i18n.T(lang, i18n.KeyIDAndStatusRequired)))
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(i18n.T(lang, i18n.KeyInvalidUserID)))
		return
	}

	transaction, err := h.transactionUsecase.UpdateStatus(c.Request.Context(), id, input.Status, lang)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transaction)
}

// Delete removes a transaction and its line items
// DELETE /transaction/delete/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	lang := middleware.Lang(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.transactionUsecase.Delete(c.Request.Context(), id, lang); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, i18n.T(lang, i18n.KeyTransactionDeleted), nil)
}
