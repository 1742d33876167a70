package service

import (
	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/util"
)

// InferTags 推断失误段落命中的技术标签。
// annotations 必须是调用方刚查出的、已按谱面过滤的标注集合，本函数不再按谱面过滤。
// 命中规则：start <= section <= end（闭区间）。多条标注重叠命中时取标签并集，
// 去重但保留首次出现顺序，不排序——一个失误点可能同时落在多位贡献者的区间里，
// 所有涉及的技术都要给出。零命中返回哨兵标签，结果永远非空。
func InferTags(failureSection int, annotations []model.Annotation) (model.TagList, error) {
	if failureSection <= 0 {
		return nil, util.ErrInvalidSection
	}

	var tags model.TagList
	seen := make(map[string]bool)
	for _, a := range annotations {
		if !a.ContainsSection(failureSection) {
			continue
		}
		for _, tag := range a.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return model.TagList{model.SentinelTag}, nil
	}
	return tags, nil
}
