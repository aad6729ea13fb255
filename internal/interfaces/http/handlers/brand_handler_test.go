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

func newBrandRouter(repo *brandRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBrandHandler(usecases.NewBrandUsecase(repo, uowStub{}))

	r := gin.New()
	r.Use(middleware.LocaleMiddleware())
	r.GET("/brands/all", h.List)
	r.POST("/brands/create", h.Create)
	r.PUT("/brands/update/:id", h.Update)
	r.DELETE("/brands/delete/:id", h.Delete)
	return r
}

func TestBrandHandler_CreateAndList(t *testing.T) {
	repo := newBrandRepoStub()
	r := newBrandRouter(repo)

	body := `{"slug":"volvo","translations":[{"language":"fr","name":"Volvo"},{"language":"en","name":"Volvo"}]}`
	w := postJSON(t, r, "/brands/create", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		Message string          `json:"message"`
		Brand   *entities.Brand `json:"brand"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if created.Brand.Slug != "volvo" || len(created.Brand.Translations) != 2 {
		t.Fatalf("unexpected brand: %+v", created.Brand)
	}

	// duplicate slug is rejected with the slug in the message
	w = postJSON(t, r, "/brands/create", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("volvo")) {
		t.Fatalf("conflict message does not name the slug: %s", w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/brands/all", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var brands []*entities.Brand
	if err := json.Unmarshal(w.Body.Bytes(), &brands); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(brands) != 1 {
		t.Fatalf("expected 1 brand, got %d", len(brands))
	}
}

func TestBrandHandler_Update_InvalidID(t *testing.T) {
	r := newBrandRouter(newBrandRepoStub())

	req := httptest.NewRequest(http.MethodPut, "/brands/update/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestBrandHandler_Delete_NotFound(t *testing.T) {
	r := newBrandRouter(newBrandRepoStub())

	req := httptest.NewRequest(http.MethodDelete, "/brands/delete/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}
