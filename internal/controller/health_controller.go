package controller

import (
	"context"
	"credit_edu_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 可探活的后端依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Store     string
	Component Pinger
}

func NewHealthController(store string, component Pinger) *HealthController {
	return &HealthController{Store: store, Component: component}
}

// @Summary 健康检查
// @Description 检查服务及测验存储状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if c.Component != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.Component.Ping(pingCtx); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, util.CodeUnavailable, c.Store+" unavailable")
			return
		}
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			c.Store: "up",
		},
	})
}
