package controller

import (
	"strconv"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// swagger:model PracticeRecordRequest
type PracticeRecordRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=miss scored"`
	ChartID uint   `json:"chartId" binding:"required"`

	// miss 形态
	MissSection int    `json:"missSection"`
	MissCount   int    `json:"missCount"`
	Cause       string `json:"cause"`
	Notes       string `json:"notes"`

	// scored 形态
	PracticeCount int    `json:"practiceCount"`
	Score         *int   `json:"score"`
	Comment       string `json:"comment"`
}

// CreateRecord godoc
// @Summary 记录练习
// @Description miss 形态在入库时做一次标签推断并固化快照；scored 形态只记练习情况
// @Tags 打歌记录
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body PracticeRecordRequest true "练习记录"
// @Success 201 {object} util.Response{data=model.PracticeRecord} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "谱面不存在"
// @Router /api/practice-records [post]
func (c *PracticeController) CreateRecord(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	var req PracticeRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var record *model.PracticeRecord
	var err error

	switch model.RecordKind(req.Kind) {
	case model.KindMiss:
		record, err = c.PracticeService.CreateMissRecord(actor, service.MissRecordInput{
			ChartID:     req.ChartID,
			MissSection: req.MissSection,
			MissCount:   req.MissCount,
			Cause:       model.FailureCause(req.Cause),
			Notes:       req.Notes,
		})
	case model.KindScored:
		record, err = c.PracticeService.CreateScoredRecord(actor, service.ScoredRecordInput{
			ChartID:       req.ChartID,
			PracticeCount: req.PracticeCount,
			Score:         req.Score,
			Comment:       req.Comment,
		})
	}

	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, record)
}

// ListRecords godoc
// @Summary 我的打歌记录
// @Description 当前用户全部记录，按创建时间倒序
// @Tags 打歌记录
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.PracticeRecord} "成功"
// @Router /api/practice-records [get]
func (c *PracticeController) ListRecords(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.PracticeService.ListForUser(actor.Username)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// DeleteRecord godoc
// @Summary 删除打歌记录
// @Description 仅记录作者本人或管理员可删
// @Tags 打歌记录
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "记录ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权删除"
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/practice-records/{id} [delete]
func (c *PracticeController) DeleteRecord(ctx *gin.Context) {
	actor, ok := util.GetActorFromContext(ctx)
	if !ok {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的记录ID")
		return
	}

	if err := c.PracticeService.Delete(actor, uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
