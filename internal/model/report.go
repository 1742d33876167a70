package model

// DailyMiss 某个日历日的总失误数
type DailyMiss struct {
	Date      string `json:"date"` // 2006-01-02
	MissCount int    `json:"missCount"`
}

// DiagnosticReport 个人能力诊断报告。
// HasTaggedRecords 为 false 时弱点维度不可用（没有任何非哨兵标签的失误记录），
// 调用方应整体隐藏雷达图而不是渲染出退化结果。
// swagger:model DiagnosticReport
type DiagnosticReport struct {
	TagScores        map[string]float64   `json:"tagScores"`
	CauseCounts      map[FailureCause]int `json:"causeCounts"`
	DailyTrend       []DailyMiss          `json:"dailyTrend"`
	HasTaggedRecords bool                 `json:"hasTaggedRecords"`
}
