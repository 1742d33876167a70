package controller

import (
	"strconv"
	"strings"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	ChartService *service.ChartService
}

func NewChartController(chartService *service.ChartService) *ChartController {
	return &ChartController{ChartService: chartService}
}

// ListCharts godoc
// @Summary 谱面列表
// @Description 支持歌名搜索、难度多选、指定等级和等级排序
// @Tags 谱面
// @Produce  json
// @Security ApiKeyAuth
// @Param   search query string false "歌名关键词"
// @Param   difficulty query string false "难度，逗号分隔，如 Expert,Master"
// @Param   level query int false "等级"
// @Param   sort query string false "排序 asc|desc|difficulty"
// @Success 200 {object} util.Response{data=[]model.Chart} "成功"
// @Router /api/charts [get]
func (c *ChartController) ListCharts(ctx *gin.Context) {
	filter := repository.ChartFilter{
		Search:    ctx.Query("search"),
		LevelSort: ctx.Query("sort"),
	}

	if raw := ctx.Query("difficulty"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			diff := model.Difficulty(strings.TrimSpace(d))
			if !diff.Valid() {
				util.BadRequest(ctx, util.ErrInvalidDifficulty.Error())
				return
			}
			filter.Difficulties = append(filter.Difficulties, diff)
		}
	}

	if raw := ctx.Query("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "level 必须是整数")
			return
		}
		filter.Level = &level
	}

	charts, err := c.ChartService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, charts)
}

// GetChart godoc
// @Summary 谱面详情
// @Tags 谱面
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "谱面ID"
// @Success 200 {object} util.Response{data=model.Chart} "成功"
// @Failure 404 {object} util.Response "谱面不存在"
// @Router /api/charts/{id} [get]
func (c *ChartController) GetChart(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的谱面ID")
		return
	}

	chart, err := c.ChartService.Get(uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chart)
}

// CreateChart godoc
// @Summary 上传新谱面（管理员）
// @Description 谱面长图传到图床，URL 与元数据一起入库
// @Tags 谱面
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   song_name formData string true "歌曲名称"
// @Param   difficulty formData string true "难度等级 Easy|Normal|Hard|Expert|Master"
// @Param   level formData int false "等级"
// @Param   image formData file true "谱面长图"
// @Success 201 {object} util.Response{data=model.Chart} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/charts [post]
func (c *ChartController) CreateChart(ctx *gin.Context) {
	input := service.ChartInput{
		SongName:   ctx.PostForm("song_name"),
		Difficulty: model.Difficulty(ctx.PostForm("difficulty")),
	}

	if raw := ctx.PostForm("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "level 必须是整数")
			return
		}
		input.Level = &level
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "缺少谱面图片")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	chart, err := c.ChartService.Create(ctx.Request.Context(), input, file, fileHeader.Size, fileHeader.Filename)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, chart)
}

// DeleteChart godoc
// @Summary 删除谱面（管理员）
// @Description 删除谱面并级联清理其全部标注
// @Tags 谱面
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "谱面ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "谱面不存在"
// @Router /api/admin/charts/{id} [delete]
func (c *ChartController) DeleteChart(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的谱面ID")
		return
	}

	if err := c.ChartService.Delete(uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
