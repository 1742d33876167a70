package service

import (
	"testing"
	"time"

	"rhythm_coach_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missRecord(day time.Time, missCount int, cause model.FailureCause, tags ...string) model.PracticeRecord {
	r := model.PracticeRecord{
		Kind:         model.KindMiss,
		MissCount:    missCount,
		Cause:        cause,
		DetectedTags: model.TagList(tags),
	}
	r.CreatedAt = day
	return r
}

func TestAggregate_EmptyInput(t *testing.T) {
	report := Aggregate(nil)

	assert.False(t, report.HasTaggedRecords)
	assert.Empty(t, report.TagScores)
	assert.Empty(t, report.CauseCounts)
	assert.Empty(t, report.DailyTrend)
}

func TestAggregate_WeaknessScores(t *testing.T) {
	day := time.Date(2025, 6, 1, 20, 0, 0, 0, time.Local)
	records := []model.PracticeRecord{
		missRecord(day, 10, model.CauseRhythm, "trill"),
		missRecord(day, 2, model.CauseSlip, "jack"),
	}

	report := Aggregate(records)

	require.True(t, report.HasTaggedRecords)
	// 失误最多的标签恰为 20 分；score = 100 - miss/max*80
	assert.InDelta(t, 20.0, report.TagScores["trill"], 1e-9)
	assert.InDelta(t, 84.0, report.TagScores["jack"], 1e-9)
}

func TestAggregate_MultiTagRecordCountsFullMissPerTag(t *testing.T) {
	day := time.Date(2025, 6, 1, 20, 0, 0, 0, time.Local)
	records := []model.PracticeRecord{
		// 一条记录带 3 个标签，3 个标签各计全部 6 次失误（沿用既有口径，不按比例拆分）
		missRecord(day, 6, model.CauseMisread, "trill", "jack", "stairs"),
	}

	report := Aggregate(records)

	require.True(t, report.HasTaggedRecords)
	for _, tag := range []string{"trill", "jack", "stairs"} {
		assert.InDelta(t, 20.0, report.TagScores[tag], 1e-9, tag)
	}
}

func TestAggregate_SentinelOnlyRecordsExcludedFromScoring(t *testing.T) {
	day := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	records := []model.PracticeRecord{
		missRecord(day, 5, model.CauseStamina, model.SentinelTag),
	}

	report := Aggregate(records)

	// 哨兵记录不进弱点评分，但计入原因分布和每日趋势
	assert.False(t, report.HasTaggedRecords)
	assert.Empty(t, report.TagScores)
	assert.Equal(t, 1, report.CauseCounts[model.CauseStamina])
	require.Len(t, report.DailyTrend, 1)
	assert.Equal(t, model.DailyMiss{Date: "2025-06-02", MissCount: 5}, report.DailyTrend[0])
}

func TestAggregate_CauseDistribution(t *testing.T) {
	day := time.Date(2025, 6, 3, 9, 0, 0, 0, time.Local)
	records := []model.PracticeRecord{
		missRecord(day, 1, model.CauseMisread, "trill"),
		missRecord(day, 2, model.CauseMisread, model.SentinelTag),
		missRecord(day, 3, model.CauseReaction, "jack"),
	}

	report := Aggregate(records)

	assert.Equal(t, 2, report.CauseCounts[model.CauseMisread])
	assert.Equal(t, 1, report.CauseCounts[model.CauseReaction])
}

func TestAggregate_DailyTrendSortedAndSummed(t *testing.T) {
	d1 := time.Date(2025, 6, 1, 23, 0, 0, 0, time.Local)
	d2 := time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local)
	records := []model.PracticeRecord{
		// 输入按创建时间倒序给入（仓库层就是这么返回的），趋势仍应升序
		missRecord(d2, 4, model.CauseOther, "trill"),
		missRecord(d1, 3, model.CauseOther, model.SentinelTag),
		missRecord(d1, 2, model.CauseOther, "jack"),
	}

	report := Aggregate(records)

	require.Len(t, report.DailyTrend, 2)
	assert.Equal(t, model.DailyMiss{Date: "2025-06-01", MissCount: 5}, report.DailyTrend[0])
	assert.Equal(t, model.DailyMiss{Date: "2025-06-02", MissCount: 4}, report.DailyTrend[1])
}

func TestAggregate_ScoredRecordsIgnored(t *testing.T) {
	r := model.PracticeRecord{
		Kind:          model.KindScored,
		PracticeCount: 12,
	}
	r.CreatedAt = time.Date(2025, 6, 4, 12, 0, 0, 0, time.Local)

	report := Aggregate([]model.PracticeRecord{r})

	assert.False(t, report.HasTaggedRecords)
	assert.Empty(t, report.CauseCounts)
	assert.Empty(t, report.DailyTrend)
}
