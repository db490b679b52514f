package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error body rendered for every failed request.
type Err struct {
	err error

	StatusCode int    `json:"status"`
	StatusText string `json:"error"`
	Message    string `json:"message"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", e.StatusCode),
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.err),
		)
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		err:        err,
		StatusCode: http.StatusBadRequest,
		StatusText: http.StatusText(http.StatusBadRequest),
		Message:    err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		StatusText: http.StatusText(http.StatusNotFound),
		Message:    fmt.Sprintf("%v with %v '%v' was not found.", resource, key, value),
	}
}

func ErrUnsupportedMediaType(err error) *Err {
	return &Err{
		err:        err,
		StatusCode: http.StatusUnsupportedMediaType,
		StatusText: http.StatusText(http.StatusUnsupportedMediaType),
		Message:    err.Error(),
	}
}

// ErrInternalServerError keeps the underlying error for logging but
// never exposes it to the client.
func ErrInternalServerError(err error) *Err {
	return &Err{
		err:        err,
		StatusCode: http.StatusInternalServerError,
		StatusText: http.StatusText(http.StatusInternalServerError),
		Message:    "something went wrong",
	}
}
