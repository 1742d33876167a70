package service

import (
	"strings"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/repository"
	"rhythm_coach_backend/internal/util"
)

type FeedbackService struct {
	FeedbackRepo *repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{FeedbackRepo: feedbackRepo}
}

func (s *FeedbackService) Submit(actor model.ActorContext, fbType, content string) (*model.Feedback, error) {
	if strings.TrimSpace(content) == "" {
		return nil, util.ErrEmptyContent
	}

	fb := &model.Feedback{
		Username: actor.Username,
		Type:     fbType,
		Content:  content,
	}
	if err := s.FeedbackRepo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *FeedbackService) List() ([]model.Feedback, error) {
	return s.FeedbackRepo.List()
}
