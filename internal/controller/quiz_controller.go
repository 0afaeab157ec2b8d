package controller

import (
	"credit_edu_backend/internal/service"
	"credit_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary 获取课程测验
// @Description 返回课程的题目与测验设置，未知课程使用默认题库
// @Tags 测验
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=service.QuizView}
// @Router /lessons/{id}/quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.GetQuiz(ctx.Param("id")))
}

// @Summary 提交测验结果
// @Description 保存一次测验结果，返回是否刷新最好成绩及是否获得证书
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param result body service.QuizSubmission true "测验结果"
// @Success 201 {object} util.Response{data=service.QuizSubmitResult}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /quiz/results [post]
func (c *QuizController) SubmitResult(ctx *gin.Context) {
	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	res, err := c.QuizService.SubmitResult(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to save quiz results")
		return
	}

	util.Created(ctx, res)
}

// @Summary 获取测验历史
// @Description 当前用户在该课程的全部测验记录，按完成时间倒序
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=[]service.AttemptView}
// @Failure 401 {object} util.Response
// @Router /lessons/{id}/quiz/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	attempts, err := c.QuizService.ListAttempts(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Failed to fetch quiz attempts")
		return
	}

	util.Success(ctx, attempts)
}

// @Summary 学习历史
// @Description 每门课程的最佳测验成绩与完成状态
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.LearningHistoryItem}
// @Router /learn/history [get]
func (c *QuizController) LearningHistory(ctx *gin.Context) {
	items, err := c.QuizService.LearningHistory(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to fetch learning history")
		return
	}

	util.Success(ctx, items)
}

// @Summary 测验存储调试
// @Description 列出全部测验记录，release 模式下不注册
// @Tags 测验
// @Produce json
// @Success 200 {object} service.DebugListing
// @Router /quiz/debug [get]
func (c *QuizController) Debug(ctx *gin.Context) {
	listing, err := c.QuizService.DebugAttempts(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to list quiz attempts")
		return
	}

	ctx.JSON(200, listing)
}
