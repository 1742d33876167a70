package util

import "errors"

// 校验类错误：请求到达存储层之前就被拒绝，调用方可自行修正后重试
var (
	ErrInvalidSection    = errors.New("失误段落必须是正整数")
	ErrSectionOrder      = errors.New("结束段落不能小于起始段落")
	ErrEmptyTags         = errors.New("至少选择一个技术标签")
	ErrUnknownTag        = errors.New("标签不在技术特征词表中")
	ErrInvalidRating     = errors.New("难度评分必须在 1-5 之间")
	ErrInvalidMissCount  = errors.New("失误次数必须是正整数")
	ErrInvalidCause      = errors.New("未知的失误原因")
	ErrInvalidDifficulty = errors.New("未知的难度等级")
	ErrEmptyContent      = errors.New("内容不能为空")
)

// 资源类/权限类错误
var (
	ErrUserExists         = errors.New("该用户名已被注册")
	ErrInvalidLogin       = errors.New("invalid credentials")
	ErrChartNotFound      = errors.New("chart not found")
	ErrAnnotationNotFound = errors.New("annotation not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrPermissionDenied   = errors.New("permission denied")
)

// IsValidationError 区分用户可修正的输入错误和其余错误
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidSection),
		errors.Is(err, ErrSectionOrder),
		errors.Is(err, ErrEmptyTags),
		errors.Is(err, ErrUnknownTag),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidMissCount),
		errors.Is(err, ErrInvalidCause),
		errors.Is(err, ErrInvalidDifficulty),
		errors.Is(err, ErrEmptyContent):
		return true
	}
	return false
}
