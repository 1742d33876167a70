package controller

import (
	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TechTagController struct {
	Service *service.TechTagService
}

func NewTechTagController(s *service.TechTagService) *TechTagController {
	return &TechTagController{Service: s}
}

// @Summary 获取技术特征词表
// @Tags 标注
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/tech-tags [get]
func (c *TechTagController) ListTags(ctx *gin.Context) {
	tags, err := c.Service.ListTags()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	util.Success(ctx, tags)
}
