package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"munch-pos/internal/apperr"
)

// ErrBody 失败统一 {error, message}
type ErrBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MsgBody 成功类写操作统一 {message}
type MsgBody struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, body any) { c.JSON(http.StatusOK, body) }

func Msg(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MsgBody{Message: message})
}

// Fail 业务失败一律 400（404/409 不在线上区分，沿用既有契约）
func Fail(c *gin.Context, err error) {
	msg := err.Error()
	var e *apperr.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	c.JSON(http.StatusBadRequest, ErrBody{Error: apperr.CodeOf(err), Message: msg})
}

// Unauthorized 仅由鉴权中间件使用
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrBody{
		Error:   apperr.CodeUnauthorized,
		Message: message,
	})
}
