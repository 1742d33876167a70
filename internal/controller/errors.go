package controller

import (
	"errors"
	"net/http"

	"rhythm_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError 统一错误到 HTTP 状态码的映射：
// 校验错误 400，资源不存在 404，权限不足 403，其余按存储故障记日志返回 500。
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case util.IsValidationError(err):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrChartNotFound),
		errors.Is(err, util.ErrAnnotationNotFound),
		errors.Is(err, util.ErrRecordNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrUserExists):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidLogin):
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
