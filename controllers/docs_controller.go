package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// DocsController serves the raw OpenAPI document plus the two
// single-page documentation UIs that consume it (Redoc and Scalar).
// Swagger UI itself is mounted by gin-swagger in main.
type DocsController struct{}

func NewDocsController() *DocsController {
	return &DocsController{}
}

// OpenAPIJSON serves the OpenAPI document generated by swag.
func (c *DocsController) OpenAPIJSON(ctx *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAPI document unavailable"})
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

const redocPage = `<!DOCTYPE html>
<html>
  <head>
    <title>CinemaGoBack API — Redoc</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="/api-docs/openapi.json"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`

// Redoc serves the Redoc documentation page.
func (c *DocsController) Redoc(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
}

const scalarPage = `<!DOCTYPE html>
<html>
  <head>
    <title>CinemaGoBack API — Scalar</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
  </head>
  <body>
    <script id="api-reference" data-url="/api-docs/openapi.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>`

// Scalar serves the Scalar documentation page.
func (c *DocsController) Scalar(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(scalarPage))
}
