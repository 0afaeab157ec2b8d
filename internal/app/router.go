package app

import (
	"credit_edu_backend/docs"
	"credit_edu_backend/internal/config"
	"credit_edu_backend/internal/util"
	"credit_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c, cfg)

	// 2. 需要用户身份的路由
	authGroup := router.Group("/api")
	authGroup.Use(a.authMiddleware())
	{
		a.registerQuizRoutes(authGroup, c)
		a.registerOnboardingRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/lessons/:id/quiz", c.quiz.GetQuiz)

		// 调试接口，生产环境不暴露
		if cfg.Server.Mode != util.ModeRelease {
			public.GET("/quiz/debug", c.quiz.Debug)
		}
	}
}

func (a *App) registerQuizRoutes(group *gin.RouterGroup, c *controllers) {
	group.POST("/quiz/results", c.quiz.SubmitResult)
	group.GET("/lessons/:id/quiz/attempts", c.quiz.ListAttempts)
	group.GET("/learn/history", c.quiz.LearningHistory)
}

func (a *App) registerOnboardingRoutes(group *gin.RouterGroup, c *controllers) {
	onboarding := group.Group("/onboarding")
	{
		onboarding.GET("/progress", c.onboarding.GetProgress)
		onboarding.POST("/progress", c.onboarding.SaveProgress)
		onboarding.POST("/complete", c.onboarding.Complete)
	}
}
