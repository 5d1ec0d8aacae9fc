package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrDetail struct {
	Message string `json:"message"`
}

type Err struct {
	StatusCode int       `json:"-"`
	Error      ErrDetail `json:"error"`
}

func NewErr(statusCode int, message string) *Err {
	return &Err{
		StatusCode: statusCode,
		Error: ErrDetail{
			Message: message,
		},
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err.Error())
}

func ErrNotFound() *Err {
	return NewErr(http.StatusNotFound, "Not found")
}

// ErrInternalServerError logs the underlying error and returns a body
// without detail, so store failures never leak to the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "internal server error")
}

func ErrBadGateway(err error) *Err {
	zap.L().Error("upstream request failed", zap.Error(err))

	return NewErr(http.StatusBadGateway, "upstream service unavailable")
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
