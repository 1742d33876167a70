package service

import (
	"errors"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
	"rhythm_coach_backend/internal/util"

	"gorm.io/gorm"
)

type AnnotationService struct {
	AnnotationRepo *repository.AnnotationRepository
	ChartRepo      *repository.ChartRepository
	TechTagRepo    *repository.TechTagRepository
}

func NewAnnotationService(
	annotationRepo *repository.AnnotationRepository,
	chartRepo *repository.ChartRepository,
	techTagRepo *repository.TechTagRepository,
) *AnnotationService {
	return &AnnotationService{
		AnnotationRepo: annotationRepo,
		ChartRepo:      chartRepo,
		TechTagRepo:    techTagRepo,
	}
}

// AnnotationInput 新增标注的输入
type AnnotationInput struct {
	StartSection int
	EndSection   int
	Tags         []string
	Description  string
	ExpertRating int
}

// validateAnnotation 入库前校验；allowedTags 是当前启用的技术特征词表
func validateAnnotation(input AnnotationInput, allowedTags map[string]bool) error {
	if input.StartSection <= 0 || input.EndSection <= 0 {
		return util.ErrInvalidSection
	}
	if input.EndSection < input.StartSection {
		return util.ErrSectionOrder
	}
	if len(input.Tags) == 0 {
		return util.ErrEmptyTags
	}
	for _, tag := range input.Tags {
		if !allowedTags[tag] {
			return util.ErrUnknownTag
		}
	}
	if input.ExpertRating < 1 || input.ExpertRating > 5 {
		return util.ErrInvalidRating
	}
	return nil
}

// Create 任何登录用户都可标注；谱面名/难度在此刻快照进标注行
func (s *AnnotationService) Create(actor model.ActorContext, chartID uint, input AnnotationInput) (*model.Annotation, error) {
	chart, err := s.ChartRepo.FindByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChartNotFound
		}
		return nil, err
	}

	allowed, err := s.allowedTagSet()
	if err != nil {
		return nil, err
	}
	if err := validateAnnotation(input, allowed); err != nil {
		return nil, err
	}

	ann := &model.Annotation{
		ChartID:      chart.ID,
		ChartName:    chart.SongName,
		Difficulty:   chart.Difficulty,
		StartSection: input.StartSection,
		EndSection:   input.EndSection,
		Tags:         model.TagList(input.Tags),
		Description:  input.Description,
		ExpertRating: input.ExpertRating,
		Annotator:    actor.Username,
	}

	if err := s.AnnotationRepo.Create(ann); err != nil {
		return nil, err
	}
	return ann, nil
}

func (s *AnnotationService) ListForChart(chartID uint) ([]model.Annotation, error) {
	if _, err := s.ChartRepo.FindByID(chartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChartNotFound
		}
		return nil, err
	}
	return s.AnnotationRepo.ListByChart(chartID)
}

// ListAll 全站标注，管理员巡查用
func (s *AnnotationService) ListAll() ([]model.Annotation, error) {
	return s.AnnotationRepo.List()
}

// Delete 仅标注者本人或管理员可删。权限不足返回 ErrPermissionDenied，
// 调用方据此拒绝动作，不会把它当作存储故障处理。
func (s *AnnotationService) Delete(actor model.ActorContext, id uint) error {
	ann, err := s.AnnotationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAnnotationNotFound
		}
		return err
	}

	if !CanDelete(actor, ann.Annotator) {
		return util.ErrPermissionDenied
	}
	return s.AnnotationRepo.Delete(id)
}

func (s *AnnotationService) allowedTagSet() (map[string]bool, error) {
	tags, err := s.TechTagRepo.ListEnabled()
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]bool, len(tags))
	for _, t := range tags {
		allowed[t.Code] = true
	}
	return allowed, nil
}
