package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/MCPikon/cinemagoback/docs"
)

func docsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewDocsController()
	r := gin.New()
	r.GET("/api-docs/openapi.json", ctrl.OpenAPIJSON)
	r.GET("/api/redoc", ctrl.Redoc)
	r.GET("/api/scalar", ctrl.Scalar)
	return r
}

func TestOpenAPIJSON(t *testing.T) {
	w := httptest.NewRecorder()
	docsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/movies/findAll")
	assert.Contains(t, paths, "/series/patch/{id}")
	assert.Contains(t, paths, "/reviews/findAllByImdbId/{imdbId}")
}

func TestDocUIPages(t *testing.T) {
	t.Run("redoc page references the document", func(t *testing.T) {
		w := httptest.NewRecorder()
		docsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/redoc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `spec-url="/api-docs/openapi.json"`)
	})

	t.Run("scalar page references the document", func(t *testing.T) {
		w := httptest.NewRecorder()
		docsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/scalar", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `data-url="/api-docs/openapi.json"`)
	})
}
