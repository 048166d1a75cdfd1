package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppController struct{}

func NewAppController() *AppController {
	return &AppController{}
}

// Hello godoc
//
//	@Summary		Hello
//	@Description	Greeting banner of the API.
//	@Tags			General
//	@Produce		json
//	@Success		200	{string}	string
//	@Router			/ [get]
func (c *AppController) Hello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, "Hello there 👋, the CinemaGoBack API is running!!")
}

// Ping godoc
//
//	@Summary		Ping
//	@Description	Liveness probe.
//	@Tags			General
//	@Produce		json
//	@Success		200	{string}	string
//	@Router			/ping [get]
func (c *AppController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, "Pong.")
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports the status of the API subsystems.
//	@Tags			General
//	@Produce		json
//	@Success		207	{object}	map[string]string
//	@Router			/health [get]
func (c *AppController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusMultiStatus, gin.H{
		"status":  "UP",
		"message": "All systems working correctly.",
	})
}
