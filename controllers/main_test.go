package controllers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MCPikon/cinemagoback/helper"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	helper.RegisterCustomValidators()
	os.Exit(m.Run())
}
