package service

import (
	"errors"
	"strings"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
	"rhythm_coach_backend/internal/util"

	"gorm.io/gorm"
)

type PracticeService struct {
	RecordRepo     *repository.PracticeRecordRepository
	ChartRepo      *repository.ChartRepository
	AnnotationRepo *repository.AnnotationRepository
}

func NewPracticeService(
	recordRepo *repository.PracticeRecordRepository,
	chartRepo *repository.ChartRepository,
	annotationRepo *repository.AnnotationRepository,
) *PracticeService {
	return &PracticeService{
		RecordRepo:     recordRepo,
		ChartRepo:      chartRepo,
		AnnotationRepo: annotationRepo,
	}
}

// MissRecordInput miss 形态记录的输入，四个诊断字段都是必填
type MissRecordInput struct {
	ChartID     uint
	MissSection int
	MissCount   int
	Cause       model.FailureCause
	Notes       string
}

func validateMissRecord(input MissRecordInput) error {
	if input.MissSection <= 0 {
		return util.ErrInvalidSection
	}
	if input.MissCount <= 0 {
		return util.ErrInvalidMissCount
	}
	if !input.Cause.Valid() {
		return util.ErrInvalidCause
	}
	return nil
}

// ScoredRecordInput 旧版练习形态记录的输入，不参与诊断
type ScoredRecordInput struct {
	ChartID       uint
	PracticeCount int
	Score         *int
	Comment       string
}

// CreateMissRecord 校验通过后，现查该谱面最新标注做一次标签推断，
// 结果随记录固化入库。之后社区标注再怎么改，这条记录的标签快照都不动，
// 历史诊断反映的是打歌当时的社区认知。
func (s *PracticeService) CreateMissRecord(actor model.ActorContext, input MissRecordInput) (*model.PracticeRecord, error) {
	if err := validateMissRecord(input); err != nil {
		return nil, err
	}

	chart, err := s.ChartRepo.FindByID(input.ChartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChartNotFound
		}
		return nil, err
	}

	annotations, err := s.AnnotationRepo.ListByChart(chart.ID)
	if err != nil {
		return nil, err
	}

	tags, err := InferTags(input.MissSection, annotations)
	if err != nil {
		return nil, err
	}

	record := &model.PracticeRecord{
		Username:     actor.Username,
		ChartID:      &chart.ID,
		ChartName:    chart.SongName,
		Difficulty:   chart.Difficulty,
		Level:        chart.Level,
		Kind:         model.KindMiss,
		MissSection:  input.MissSection,
		MissCount:    input.MissCount,
		Cause:        input.Cause,
		DetectedTags: tags,
		Notes:        input.Notes,
	}

	if err := s.RecordRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateScoredRecord 旧版形态：成绩、练习次数、备注至少填一项
func (s *PracticeService) CreateScoredRecord(actor model.ActorContext, input ScoredRecordInput) (*model.PracticeRecord, error) {
	if input.PracticeCount <= 0 && input.Score == nil && strings.TrimSpace(input.Comment) == "" {
		return nil, util.ErrEmptyContent
	}

	chart, err := s.ChartRepo.FindByID(input.ChartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChartNotFound
		}
		return nil, err
	}

	record := &model.PracticeRecord{
		Username:      actor.Username,
		ChartID:       &chart.ID,
		ChartName:     chart.SongName,
		Difficulty:    chart.Difficulty,
		Level:         chart.Level,
		Kind:          model.KindScored,
		PracticeCount: input.PracticeCount,
		Score:         input.Score,
		Comment:       input.Comment,
	}

	if err := s.RecordRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PracticeService) ListForUser(username string) ([]model.PracticeRecord, error) {
	return s.RecordRepo.ListByUsername(username)
}

// Delete 仅记录作者本人或管理员可删
func (s *PracticeService) Delete(actor model.ActorContext, id uint) error {
	record, err := s.RecordRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRecordNotFound
		}
		return err
	}

	if !CanDelete(actor, record.Username) {
		return util.ErrPermissionDenied
	}
	return s.RecordRepo.Delete(id)
}
