package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storeops/inventory-api/internal/api/handler/v1/response"
)

// RequireJSON rejects body-carrying requests whose Content-Type
// is not application/json.
func RequireJSON() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != "POST" && ctx.Request.Method != "PUT" {
			ctx.Next()
			return
		}

		if ctx.Request.ContentLength == 0 {
			ctx.Next()
			return
		}

		contentType := ctx.GetHeader("Content-Type")
		if !strings.HasPrefix(contentType, "application/json") {
			response.RenderErr(ctx, response.ErrUnsupportedMediaType(
				fmt.Errorf("Content-Type must be application/json, got %q", contentType),
			))
			return
		}

		ctx.Next()
	}
}
