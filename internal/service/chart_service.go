package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
	"rhythm_coach_backend/internal/util"

	"gorm.io/gorm"
)

type ChartService struct {
	ChartRepo      *repository.ChartRepository
	AnnotationRepo *repository.AnnotationRepository
	Storage        *StorageService
}

func NewChartService(
	chartRepo *repository.ChartRepository,
	annotationRepo *repository.AnnotationRepository,
	storage *StorageService,
) *ChartService {
	return &ChartService{
		ChartRepo:      chartRepo,
		AnnotationRepo: annotationRepo,
		Storage:        storage,
	}
}

// ChartInput 管理员上传新谱面
type ChartInput struct {
	SongName   string
	Difficulty model.Difficulty
	Level      *int
}

// Create 图片先传图床拿 URL，再落库谱面行
func (s *ChartService) Create(ctx context.Context, input ChartInput, image io.Reader, size int64, originalName string) (*model.Chart, error) {
	if strings.TrimSpace(input.SongName) == "" {
		return nil, util.ErrEmptyContent
	}
	if !input.Difficulty.Valid() {
		return nil, util.ErrInvalidDifficulty
	}

	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("rhythm_charts/%s%s", model.GenerateUUID(), ext)

	url, err := s.Storage.Upload(ctx, filename, image, size, contentTypeForExt(ext))
	if err != nil {
		return nil, err
	}

	chart := &model.Chart{
		SongName:   input.SongName,
		Difficulty: input.Difficulty,
		Level:      input.Level,
		ImageURL:   url,
	}
	if err := s.ChartRepo.Create(chart); err != nil {
		return nil, err
	}
	return chart, nil
}

// List 谱面列表。sort=difficulty 时在内存按难度枚举序稳定排序，
// 难度在库里是字符串，直接 ORDER BY 排不出 Easy<Normal<Hard<Expert<Master。
func (s *ChartService) List(filter repository.ChartFilter) ([]model.Chart, error) {
	charts, err := s.ChartRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if filter.LevelSort == "difficulty" {
		sort.SliceStable(charts, func(i, j int) bool {
			return charts[i].Difficulty.Rank() < charts[j].Difficulty.Rank()
		})
	}
	return charts, nil
}

func (s *ChartService) Get(id uint) (*model.Chart, error) {
	chart, err := s.ChartRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChartNotFound
		}
		return nil, err
	}
	return chart, nil
}

// Delete 管理员删除谱面，顺带清掉它名下的标注，避免留下孤儿区间
func (s *ChartService) Delete(id uint) error {
	if _, err := s.ChartRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrChartNotFound
		}
		return err
	}

	if err := s.ChartRepo.Delete(id); err != nil {
		return err
	}
	return s.AnnotationRepo.DeleteByChart(id)
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
