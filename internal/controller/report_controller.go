package controller

import (
	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	DiagnosticService *service.DiagnosticService
}

func NewReportController(diagnosticService *service.DiagnosticService) *ReportController {
	return &ReportController{DiagnosticService: diagnosticService}
}

// GetReport godoc
// @Summary 个人能力诊断报告
// @Description 各技术标签弱点评分（越低越薄弱）、失误原因分布、每日失误趋势；
// @Description 每次现算，hasTaggedRecords 为 false 时前端应隐藏弱点雷达
// @Tags 诊断报告
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DiagnosticReport} "成功"
// @Router /api/report [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.DiagnosticService.GetReport(actor.Username)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
