package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() (*gin.Engine, *string) {
		var seen string
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) {
			seen = c.GetString("request_id")
			c.Status(http.StatusOK)
		})
		return r, &seen
	}

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		r, seen := newRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, *seen)
		assert.Equal(t, *seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("honors a client-supplied id", func(t *testing.T) {
		r, seen := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-id-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "client-id-42", *seen)
		assert.Equal(t, "client-id-42", w.Header().Get(RequestIDHeader))
	})
}
