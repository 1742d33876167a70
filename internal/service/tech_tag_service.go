package service

import (
	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
)

type TechTagService struct {
	TechTagRepo *repository.TechTagRepository
}

func NewTechTagService(techTagRepo *repository.TechTagRepository) *TechTagService {
	return &TechTagService{TechTagRepo: techTagRepo}
}

func (s *TechTagService) ListTags() ([]model.TechTag, error) {
	return s.TechTagRepo.ListEnabled()
}
