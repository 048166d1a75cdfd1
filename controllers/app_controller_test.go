package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := NewAppController()
	r := gin.New()
	r.GET("/", ctrl.Hello)
	r.GET("/ping", ctrl.Ping)
	r.GET("/health", ctrl.Health)

	t.Run("hello greets", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CinemaGoBack API is running")
	})

	t.Run("ping pongs", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `"Pong."`, w.Body.String())
	})

	t.Run("health reports up", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusMultiStatus, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UP", body["status"])
		assert.Equal(t, "All systems working correctly.", body["message"])
	})
}
