package controller

import (
	"credit_edu_backend/internal/service"
	"credit_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	OnboardingService *service.OnboardingService
}

func NewOnboardingController(onboardingService *service.OnboardingService) *OnboardingController {
	return &OnboardingController{OnboardingService: onboardingService}
}

// @Summary 获取引导进度
// @Tags 引导
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.OnboardingProgress}
// @Router /onboarding/progress [get]
func (c *OnboardingController) GetProgress(ctx *gin.Context) {
	progress, err := c.OnboardingService.GetProgress(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "An error occurred")
		return
	}

	util.Success(ctx, progress)
}

// @Summary 保存引导进度
// @Tags 引导
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param progress body service.OnboardingProgressRequest true "当前步骤"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /onboarding/progress [post]
func (c *OnboardingController) SaveProgress(ctx *gin.Context) {
	var req service.OnboardingProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing onboarding stage or substep")
		return
	}

	if err := c.OnboardingService.SaveProgress(ctx.Request.Context(), req); err != nil {
		respondError(ctx, err, "An error occurred")
		return
	}

	util.Success(ctx, gin.H{"saved": true})
}

// @Summary 完成引导
// @Description 保存资料并根据信用知识水平决定默认面板
// @Tags 引导
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param data body service.OnboardingCompleteRequest true "引导数据"
// @Success 200 {object} util.Response{data=service.OnboardingCompleteResult}
// @Failure 400 {object} util.Response
// @Router /onboarding/complete [post]
func (c *OnboardingController) Complete(ctx *gin.Context) {
	var req service.OnboardingCompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing onboarding data")
		return
	}

	res, err := c.OnboardingService.Complete(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "An error occurred")
		return
	}

	util.Success(ctx, res)
}
