package controller

import (
	"credit_edu_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为 HTTP 响应
func respondError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, strings.TrimPrefix(err.Error(), util.ErrValidation.Error()+": "))
	case errors.Is(err, util.ErrUnauthenticated):
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err, message)
	}
}
