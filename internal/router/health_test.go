package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/catalog"
	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/order"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := order.NewService(catalog.FromMap(nil))
	return NewRouter(order.NewHandler(service))
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestLivenessRoot(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "Pizza Price Calculator API is running!" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestLegacyRouteAlias(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/total_price", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing body, got %d", w.Code)
	}
}
