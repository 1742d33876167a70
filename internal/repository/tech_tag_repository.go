package repository

import (
	"rhythm_coach_backend/internal/model"

	"gorm.io/gorm"
)

type TechTagRepository struct {
	DB *gorm.DB
}

func NewTechTagRepository(db *gorm.DB) *TechTagRepository {
	return &TechTagRepository{DB: db}
}

func (r *TechTagRepository) ListEnabled() ([]model.TechTag, error) {
	var tags []model.TechTag
	err := r.DB.Where("enabled = ?", true).Order("id ASC").Find(&tags).Error
	return tags, err
}
