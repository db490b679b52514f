package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storeops/inventory-api/internal/api/handler/v1/response"
)

const (
	ServiceName    = "Inventory REST API Service"
	ServiceVersion = "1.0.0"
)

// HandleIndex godoc
// @Summary      Service metadata
// @Tags         service
// @Produce      json
// @Success      200  {object}  response.ServiceInfo
// @Router       / [get]
func HandleIndex(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.ServiceInfo{
		Name:    ServiceName,
		Version: ServiceVersion,
		Docs:    "/swagger/index.html",
	})
}

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         service
// @Produce      json
// @Success      200  {object}  response.Health
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Health{
		Status:  http.StatusOK,
		Message: "Healthy",
	})
}
