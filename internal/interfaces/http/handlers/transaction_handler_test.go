package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
	"github.com/arms237/backend-vehicleShop/internal/usecases"
)

func newTransactionRouter(repo *transactionRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTransactionHandler(usecases.NewTransactionUsecase(repo, uowStub{}))

	r := gin.New()
	r.Use(middleware.LocaleMiddleware())
	r.GET("/transaction/all", h.List)
	r.GET("/transaction/user/:userId", h.ListByUser)
	r.POST("/transaction/create", h.Create)
	r.PATCH("/transaction/update/:id/status", h.UpdateStatus)
	r.DELETE("/transaction/delete/:id", h.Delete)
	r.GET("/transaction/:id", h.Get)
	return r
}

func TestTransactionHandler_CreateRental(t *testing.T) {
	repo := newTransactionRepoStub()
	r := newTransactionRouter(repo)

	userID := uuid.New()
	vehicleID := uuid.New()
	body := `{"totalAmount":540,"type":"rental","status":"pending","startDate":"2026-09-01","endDate":"2026-09-10","userId":"` + userID.String() + `","vehicleTransactions":[{"vehicleId":"` + vehicleID.String() + `","price":60,"quantity":1}]}`
	w := postJSON(t, r, "/transaction/create", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created entities.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if created.Type != entities.TransactionRental || len(created.VehicleTransactions) != 1 {
		t.Fatalf("unexpected transaction: %+v", created)
	}
	if !created.StartDate.Valid || created.StartDate.Time.Hour() != 0 {
		t.Fatalf("start date not normalized to midnight: %+v", created.StartDate)
	}

	req := httptest.NewRequest(http.MethodGet, "/transaction/user/"+userID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []*entities.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction for user, got %d", len(list))
	}
}

func TestTransactionHandler_Create_MissingFields(t *testing.T) {
	r := newTransactionRouter(newTransactionRepoStub())

	w := postJSON(t, r, "/transaction/create", `{"type":"sale"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestTransactionHandler_UpdateStatus(t *testing.T) {
	repo := newTransactionRepoStub()
	id := uuid.New()
	repo.transactions[id] = &entities.Transaction{
		ID:     id,
		Type:   entities.TransactionSale,
		Status: entities.TransactionPending,
	}
	r := newTransactionRouter(repo)

	req := httptest.NewRequest(http.MethodPatch, "/transaction/update/"+id.String()+"/status",
		bytes.NewReader([]byte(`{"status":"completed"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if repo.transactions[id].Status != entities.TransactionCompleted {
		t.Fatalf("status not updated: %s", repo.transactions[id].Status)
	}

	// unknown status value is rejected
	req = httptest.NewRequest(http.MethodPatch, "/transaction/update/"+id.String()+"/status",
		bytes.NewReader([]byte(`{"status":"shipped"}`)))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	repo := newTransactionRepoStub()
	id := uuid.New()
	repo.transactions[id] = &entities.Transaction{ID: id}
	r := newTransactionRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/transaction/delete/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/transaction/delete/"+id.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
