package repository

import (
	"rhythm_coach_backend/internal/model"

	"gorm.io/gorm"
)

type PracticeRecordRepository struct {
	DB *gorm.DB
}

func NewPracticeRecordRepository(db *gorm.DB) *PracticeRecordRepository {
	return &PracticeRecordRepository{DB: db}
}

func (r *PracticeRecordRepository) Create(record *model.PracticeRecord) error {
	return r.DB.Create(record).Error
}

func (r *PracticeRecordRepository) FindByID(id uint) (*model.PracticeRecord, error) {
	var record model.PracticeRecord
	err := r.DB.First(&record, id).Error
	return &record, err
}

// ListByUsername 按创建时间倒序返回某用户全部记录，每次直查最新数据
func (r *PracticeRecordRepository) ListByUsername(username string) ([]model.PracticeRecord, error) {
	var records []model.PracticeRecord
	err := r.DB.Where("username = ?", username).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *PracticeRecordRepository) Delete(id uint) error {
	return r.DB.Delete(&model.PracticeRecord{}, id).Error
}
