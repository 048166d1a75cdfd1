package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MCPikon/cinemagoback/apperrors"
)

// respondError translates a service error into its HTTP representation.
// Empty listings answer 204 with no body; internal failures hide their cause.
func respondError(ctx *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	switch status {
	case http.StatusNoContent:
		ctx.Status(status)
	case http.StatusInternalServerError:
		ctx.JSON(status, gin.H{"error": apperrors.ErrInternal.Error()})
	default:
		ctx.JSON(status, gin.H{"error": err.Error()})
	}
}

// pagingQuery reads the page/size query parameters. Missing or malformed
// values fall back to the listing defaults (first page, 10 items).
func pagingQuery(ctx *gin.Context) (int64, int64) {
	page, err := strconv.ParseInt(ctx.Query("page"), 10, 64)
	if err != nil {
		page = 0
	}
	size, err := strconv.ParseInt(ctx.Query("size"), 10, 64)
	if err != nil {
		size = 10
	}
	return page, size
}
