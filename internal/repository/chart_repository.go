package repository

import (
	"rhythm_coach_backend/internal/model"

	"gorm.io/gorm"
)

type ChartRepository struct {
	DB *gorm.DB
}

func NewChartRepository(db *gorm.DB) *ChartRepository {
	return &ChartRepository{DB: db}
}

// ChartFilter 谱面列表筛选条件：歌名搜索、难度多选、指定等级、等级排序
type ChartFilter struct {
	Search       string
	Difficulties []model.Difficulty
	Level        *int
	LevelSort    string // "" | "asc" | "desc" | "difficulty"（难度序在服务层排）
}

func (r *ChartRepository) Create(chart *model.Chart) error {
	return r.DB.Create(chart).Error
}

func (r *ChartRepository) FindByID(id uint) (*model.Chart, error) {
	var chart model.Chart
	err := r.DB.First(&chart, id).Error
	return &chart, err
}

// List 每次直查数据库，谱面库没有任何缓存层
func (r *ChartRepository) List(filter ChartFilter) ([]model.Chart, error) {
	q := r.DB.Model(&model.Chart{})

	if filter.Search != "" {
		q = q.Where("song_name LIKE ?", "%"+filter.Search+"%")
	}
	if len(filter.Difficulties) > 0 {
		q = q.Where("difficulty IN ?", filter.Difficulties)
	}
	if filter.Level != nil {
		q = q.Where("level = ?", *filter.Level)
	}

	switch filter.LevelSort {
	case "asc":
		q = q.Order("level ASC")
	case "desc":
		q = q.Order("level DESC")
	default:
		q = q.Order("id ASC")
	}

	var charts []model.Chart
	err := q.Find(&charts).Error
	return charts, err
}

func (r *ChartRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Chart{}, id).Error
}
