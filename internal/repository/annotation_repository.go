package repository

import (
	"rhythm_coach_backend/internal/model"

	"gorm.io/gorm"
)

type AnnotationRepository struct {
	DB *gorm.DB
}

func NewAnnotationRepository(db *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{DB: db}
}

func (r *AnnotationRepository) Create(ann *model.Annotation) error {
	return r.DB.Create(ann).Error
}

func (r *AnnotationRepository) FindByID(id uint) (*model.Annotation, error) {
	var ann model.Annotation
	err := r.DB.First(&ann, id).Error
	return &ann, err
}

// ListByChart 指定谱面的全部标注，新的在前。重叠区间原样保留，不去重。
func (r *AnnotationRepository) ListByChart(chartID uint) ([]model.Annotation, error) {
	var anns []model.Annotation
	err := r.DB.Where("chart_id = ?", chartID).Order("created_at DESC").Find(&anns).Error
	return anns, err
}

func (r *AnnotationRepository) List() ([]model.Annotation, error) {
	var anns []model.Annotation
	err := r.DB.Order("created_at DESC").Find(&anns).Error
	return anns, err
}

func (r *AnnotationRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Annotation{}, id).Error
}

// DeleteByChart 谱面删除时的级联清理，单条语句
func (r *AnnotationRepository) DeleteByChart(chartID uint) error {
	return r.DB.Where("chart_id = ?", chartID).Delete(&model.Annotation{}).Error
}
