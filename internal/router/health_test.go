package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dinepos/internal/auth"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	repo := auth.NewInMemoryUserRepository()
	service := auth.NewService(repo)
	r := NewRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, req)

	// Assert
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestRegisterRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := auth.NewInMemoryUserRepository()
	service := auth.NewService(repo)
	r := NewRouter(service)

	body := `{"name":"Test User","email":"test@example.com","password":"Password@123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}
