package service

import (
	"sort"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
)

type DiagnosticService struct {
	RecordRepo *repository.PracticeRecordRepository
}

func NewDiagnosticService(recordRepo *repository.PracticeRecordRepository) *DiagnosticService {
	return &DiagnosticService{RecordRepo: recordRepo}
}

// GetReport 现查该用户全部记录并聚合出诊断报告，不做任何增量或缓存
func (s *DiagnosticService) GetReport(username string) (*model.DiagnosticReport, error) {
	records, err := s.RecordRepo.ListByUsername(username)
	if err != nil {
		return nil, err
	}
	return Aggregate(records), nil
}

// Aggregate 把打歌记录聚合成诊断报告。只有 miss 形态的记录参与统计；
// 标签快照恰为哨兵的记录不进弱点评分，但照常计入原因分布和每日趋势。
//
// 弱点评分：记录按标签快照展开成 (tag, missCount) 对，一条带 3 个标签的记录
// 给 3 个标签各计全部失误次数（不按比例拆分，沿用既有口径）；按标签求和后
// score = 100 - miss/maxMiss*80，失误最多的标签恰为 20 分，零失误为 100 分，
// 分数越低越薄弱。maxMiss 为 0 或没有任何有效标签组时跳过该维度，不做除法。
func Aggregate(records []model.PracticeRecord) *model.DiagnosticReport {
	report := &model.DiagnosticReport{
		TagScores:   make(map[string]float64),
		CauseCounts: make(map[model.FailureCause]int),
		DailyTrend:  []model.DailyMiss{},
	}

	rawMiss := make(map[string]int)
	tagOrder := []string{}
	dailyMiss := make(map[string]int)

	for _, r := range records {
		if r.Kind != model.KindMiss {
			continue
		}

		// 原因分布与每日趋势覆盖全部 miss 记录，含哨兵
		report.CauseCounts[r.Cause]++
		day := r.CreatedAt.Format("2006-01-02")
		dailyMiss[day] += r.MissCount

		if r.DetectedTags.IsSentinelOnly() {
			continue
		}
		for _, tag := range r.DetectedTags {
			if _, ok := rawMiss[tag]; !ok {
				tagOrder = append(tagOrder, tag)
			}
			rawMiss[tag] += r.MissCount
		}
	}

	maxMiss := 0
	for _, v := range rawMiss {
		if v > maxMiss {
			maxMiss = v
		}
	}

	report.HasTaggedRecords = len(rawMiss) > 0

	// maxMiss 为 0 时弱点维度整体不可用，跳过评分避免除零
	if maxMiss > 0 {
		for _, tag := range tagOrder {
			report.TagScores[tag] = 100 - float64(rawMiss[tag])/float64(maxMiss)*80
		}
	}

	days := make([]string, 0, len(dailyMiss))
	for day := range dailyMiss {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		report.DailyTrend = append(report.DailyTrend, model.DailyMiss{
			Date:      day,
			MissCount: dailyMiss[day],
		})
	}

	return report
}
