package repository

import (
	"rhythm_coach_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(fb *model.Feedback) error {
	return r.DB.Create(fb).Error
}

func (r *FeedbackRepository) List() ([]model.Feedback, error) {
	var list []model.Feedback
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}
