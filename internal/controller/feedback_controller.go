package controller

import (
	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// swagger:model FeedbackRequest
type FeedbackRequest struct {
	Type    string `json:"type" binding:"required,oneof=bug suggestion other"`
	Content string `json:"content" binding:"required"`
}

// SubmitFeedback godoc
// @Summary 提交反馈
// @Tags 反馈
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body FeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response{data=model.Feedback} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fb, err := c.FeedbackService.Submit(actor, req.Type, req.Content)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, fb)
}

// ListFeedback godoc
// @Summary 反馈列表（管理员）
// @Tags 反馈
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Feedback} "成功"
// @Router /api/admin/feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	list, err := c.FeedbackService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}
