package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-review-api/pkg/middleware"

	"github.com/stretchr/testify/assert"
)

const frontendOrigin = "http://localhost:3000"

func serveCORS(method, origin string) (*httptest.ResponseRecorder, bool) {
	var handlerCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/movies", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()

	middleware.CORS(frontendOrigin)(next).ServeHTTP(rec, req)
	return rec, handlerCalled
}

func TestCORS_AllowedOrigin(t *testing.T) {
	rec, handlerCalled := serveCORS(http.MethodGet, frontendOrigin)

	assert.True(t, handlerCalled)
	assert.Equal(t, frontendOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_OtherOrigin(t *testing.T) {
	rec, handlerCalled := serveCORS(http.MethodGet, "http://evil.example.com")

	// The request still runs; only the CORS headers are withheld
	assert.True(t, handlerCalled)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	rec, handlerCalled := serveCORS(http.MethodOptions, frontendOrigin)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, frontendOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_NoOrigin(t *testing.T) {
	rec, handlerCalled := serveCORS(http.MethodGet, "")

	assert.True(t, handlerCalled)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
