package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": {"status": "ok"}}`, w.Body.String())
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Binding fails before the service is touched, so a bare handler works.
	h := NewAuthHandler(nil, false, 0)

	r := gin.New()
	r.POST("/register", h.Register)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "missing email", body: `{"password": "longenough"}`},
		{name: "bad email", body: `{"email": "nope", "password": "longenough"}`},
		{name: "short password", body: `{"email": "a@b.com", "password": "short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
		})
	}
}

func TestPathIDRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/applications/:id", func(c *gin.Context) {
		_, err := pathID(c)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/applications/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/applications/17", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
