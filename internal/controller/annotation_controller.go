package controller

import (
	"strconv"

	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnnotationController struct {
	AnnotationService *service.AnnotationService
}

func NewAnnotationController(annotationService *service.AnnotationService) *AnnotationController {
	return &AnnotationController{AnnotationService: annotationService}
}

// swagger:model AnnotationRequest
type AnnotationRequest struct {
	StartSection int      `json:"startSection" binding:"required"`
	EndSection   int      `json:"endSection" binding:"required"`
	Tags         []string `json:"tags" binding:"required"`
	Description  string   `json:"description"`
	ExpertRating int      `json:"expertRating" binding:"required"`
}

// CreateAnnotation godoc
// @Summary 新增标注
// @Description 任何登录用户都可以给谱面标注难点区间；区间可与他人重叠
// @Tags 标注
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "谱面ID"
// @Param   body body AnnotationRequest true "标注内容"
// @Success 201 {object} util.Response{data=model.Annotation} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "谱面不存在"
// @Router /api/charts/{id}/annotations [post]
func (c *AnnotationController) CreateAnnotation(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	chartID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的谱面ID")
		return
	}

	var req AnnotationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ann, err := c.AnnotationService.Create(actor, uint(chartID), service.AnnotationInput{
		StartSection: req.StartSection,
		EndSection:   req.EndSection,
		Tags:         req.Tags,
		Description:  req.Description,
		ExpertRating: req.ExpertRating,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, ann)
}

// ListAnnotations godoc
// @Summary 谱面的社区标注
// @Description 新的在前；创建后立即可见，没有缓存延迟
// @Tags 标注
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "谱面ID"
// @Success 200 {object} util.Response{data=[]model.Annotation} "成功"
// @Failure 404 {object} util.Response "谱面不存在"
// @Router /api/charts/{id}/annotations [get]
func (c *AnnotationController) ListAnnotations(ctx *gin.Context) {
	chartID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的谱面ID")
		return
	}

	anns, err := c.AnnotationService.ListForChart(uint(chartID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, anns)
}

// ListAllAnnotations godoc
// @Summary 全站标注（管理员）
// @Description 按创建时间倒序返回所有谱面的标注，用于内容巡查
// @Tags 标注
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Annotation} "成功"
// @Router /api/admin/annotations [get]
func (c *AnnotationController) ListAllAnnotations(ctx *gin.Context) {
	anns, err := c.AnnotationService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, anns)
}

// DeleteAnnotation godoc
// @Summary 删除标注
// @Description 仅标注者本人或管理员可删
// @Tags 标注
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "标注ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权删除"
// @Failure 404 {object} util.Response "标注不存在"
// @Router /api/annotations/{id} [delete]
func (c *AnnotationController) DeleteAnnotation(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的标注ID")
		return
	}

	if err := c.AnnotationService.Delete(actor, uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
