package service

import (
	"testing"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ann(start, end int, tags ...string) model.Annotation {
	return model.Annotation{
		StartSection: start,
		EndSection:   end,
		Tags:         model.TagList(tags),
	}
}

func TestInferTags_NoMatchReturnsSentinel(t *testing.T) {
	anns := []model.Annotation{
		ann(1, 4, "trill"),
		ann(10, 12, "jack"),
	}

	tags, err := InferTags(7, anns)
	require.NoError(t, err)
	assert.Equal(t, model.TagList{model.SentinelTag}, tags)
}

func TestInferTags_EmptyIndexReturnsSentinel(t *testing.T) {
	tags, err := InferTags(3, nil)
	require.NoError(t, err)
	// 结果永远非空，零命中时给哨兵标签
	assert.Equal(t, model.TagList{model.SentinelTag}, tags)
}

func TestInferTags_OverlappingRangesUnionFirstSeenOrder(t *testing.T) {
	anns := []model.Annotation{
		ann(1, 10, "trill", "jack"),
		ann(5, 15, "jack", "stairs"),
	}

	tags, err := InferTags(7, anns)
	require.NoError(t, err)
	// 并集去重，保留首次出现顺序，不排序
	assert.Equal(t, model.TagList{"trill", "jack", "stairs"}, tags)
}

func TestInferTags_SingleSectionRangeBoundary(t *testing.T) {
	anns := []model.Annotation{ann(5, 5, "chord")}

	tags, err := InferTags(5, anns)
	require.NoError(t, err)
	assert.Equal(t, model.TagList{"chord"}, tags)

	for _, s := range []int{4, 6} {
		tags, err := InferTags(s, anns)
		require.NoError(t, err)
		assert.Equal(t, model.TagList{model.SentinelTag}, tags)
	}
}

func TestInferTags_InclusiveEndpoints(t *testing.T) {
	anns := []model.Annotation{ann(3, 8, "soflan")}

	for _, s := range []int{3, 8} {
		tags, err := InferTags(s, anns)
		require.NoError(t, err)
		assert.Equal(t, model.TagList{"soflan"}, tags)
	}
}

func TestInferTags_RejectsNonPositiveSection(t *testing.T) {
	for _, s := range []int{0, -1} {
		_, err := InferTags(s, nil)
		assert.ErrorIs(t, err, util.ErrInvalidSection)
	}
}
