package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeCatalog struct {
	products map[int]ProductSnapshot
	variants map[int]VariantSnapshot
	combos   map[int]ComboSnapshot
}

func (f *fakeCatalog) ProductSnapshot(_ context.Context, id int) (ProductSnapshot, error) {
	p, ok := f.products[id]
	if !ok {
		return ProductSnapshot{}, errors.New("product not found")
	}
	return p, nil
}

func (f *fakeCatalog) VariantSnapshot(_ context.Context, productID, variantID int) (ProductSnapshot, VariantSnapshot, error) {
	p, ok := f.products[productID]
	if !ok {
		return ProductSnapshot{}, VariantSnapshot{}, errors.New("product not found")
	}
	v, ok := f.variants[variantID]
	if !ok {
		return ProductSnapshot{}, VariantSnapshot{}, errors.New("variant not found")
	}
	return p, v, nil
}

func (f *fakeCatalog) ComboSnapshot(_ context.Context, id int) (ComboSnapshot, error) {
	cb, ok := f.combos[id]
	if !ok {
		return ComboSnapshot{}, errors.New("combo not found")
	}
	return cb, nil
}

func setupCartRouter() (*gin.Engine, *SessionManager) {
	gin.SetMode(gin.TestMode)

	catalog := &fakeCatalog{
		products: map[int]ProductSnapshot{
			1: {ID: 1, Name: "Pho", Price: 50000},
			2: {ID: 2, Name: "Tea", Price: 15000},
		},
		variants: map[int]VariantSnapshot{
			9: {ID: 9, Name: "Large", EffectivePrice: 20000},
		},
		combos: map[int]ComboSnapshot{
			4: {ID: 4, Name: "Family Set", EffectivePrice: 200000, ItemsCount: 2},
		},
	}

	sessions := NewSessionManager()
	handler := NewHandler(sessions, catalog)

	r := gin.New()
	r.POST("/cart/sessions", handler.CreateSession)
	r.GET("/cart/sessions/:id", handler.GetCart)
	r.POST("/cart/sessions/:id/items", handler.AddItem)
	r.PATCH("/cart/sessions/:id/items/:lineID", handler.UpdateQuantity)
	r.DELETE("/cart/sessions/:id/items/:lineID", handler.RemoveLine)
	r.DELETE("/cart/sessions/:id/items", handler.Clear)
	r.POST("/cart/sessions/:id/toggle", handler.ToggleVisibility)

	return r, sessions
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSessionAndAddProduct(t *testing.T) {
	r, _ := setupCartRouter()

	w := postJSON(t, r, "/cart/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var created struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response: %v", err)
	}

	qty := 2
	w = postJSON(t, r, "/cart/sessions/"+created.SessionID+"/items", addItemRequest{
		Kind: "product", ProductID: 1, Quantity: &qty,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		LineID         string  `json:"line_id"`
		TotalItemCount int     `json:"total_item_count"`
		TotalPrice     float64 `json:"total_price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.TotalItemCount != 2 || resp.TotalPrice != 100000 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if resp.LineID == "" {
		t.Fatalf("expected a line id")
	}
}

func TestAddItemUnknownSession(t *testing.T) {
	r, _ := setupCartRouter()

	w := postJSON(t, r, "/cart/sessions/does-not-exist/items", addItemRequest{Kind: "product", ProductID: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	r, sessions := setupCartRouter()
	id, _ := sessions.Create()

	w := postJSON(t, r, "/cart/sessions/"+id+"/items", addItemRequest{Kind: "product", ProductID: 999})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAddItemRejectsExplicitZeroQuantity(t *testing.T) {
	r, sessions := setupCartRouter()
	id, _ := sessions.Create()

	zero := 0
	w := postJSON(t, r, "/cart/sessions/"+id+"/items", addItemRequest{Kind: "product", ProductID: 1, Quantity: &zero})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	r, sessions := setupCartRouter()
	id, store := sessions.Create()

	w := postJSON(t, r, "/cart/sessions/"+id+"/items", addItemRequest{Kind: "product_variant", ProductID: 2, VariantID: 9})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := store.TotalItemCount(); got != 1 {
		t.Fatalf("expected item count 1, got %d", got)
	}
	if got := store.TotalPrice(); got != 20000 {
		t.Fatalf("expected total 20000, got %v", got)
	}
}

func TestUpdateQuantityToZeroRemovesOverHTTP(t *testing.T) {
	r, sessions := setupCartRouter()
	id, store := sessions.Create()

	lineID, err := store.AddProduct(ProductSnapshot{ID: 1, Name: "Pho", Price: 50000}, 3, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, _ := json.Marshal(map[string]int{"quantity": 0})
	req := httptest.NewRequest(http.MethodPatch, "/cart/sessions/"+id+"/items/"+lineID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if len(store.Lines()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestGetCartReportsTotals(t *testing.T) {
	r, sessions := setupCartRouter()
	id, store := sessions.Create()

	_, _ = store.AddProduct(ProductSnapshot{ID: 1, Name: "Pho", Price: 50000}, 2, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/cart/sessions/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Lines          []Line  `json:"lines"`
		TotalItemCount int     `json:"total_item_count"`
		TotalPrice     float64 `json:"total_price"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Lines) != 1 || resp.TotalItemCount != 2 || resp.TotalPrice != 100000 {
		t.Fatalf("unexpected cart payload: %+v", resp)
	}
}

func TestClearAndToggleOverHTTP(t *testing.T) {
	r, sessions := setupCartRouter()
	id, store := sessions.Create()

	_, _ = store.AddProduct(ProductSnapshot{ID: 1, Name: "Pho", Price: 50000}, 2, "", nil)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/sessions/%s/items", id), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(store.Lines()) != 0 {
		t.Fatalf("clear failed: status %d, %d lines", w.Code, len(store.Lines()))
	}

	w = postJSON(t, r, "/cart/sessions/"+id+"/toggle", nil)
	if w.Code != http.StatusOK || !store.IsOpen() {
		t.Fatalf("toggle failed: status %d, open=%v", w.Code, store.IsOpen())
	}
}
