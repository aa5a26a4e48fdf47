package service

import (
	"context"
	"log"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/feedback/dto"
	"anphu.vn/residencehub/internal/modules/feedback/repository"
	searchService "anphu.vn/residencehub/internal/modules/search/service"
	"github.com/google/uuid"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, userID uuid.UUID, input dto.CreateFeedbackInput) (*entity.Feedback, error)
	GetFeedbacks(ctx context.Context) ([]entity.Feedback, error)
}

type feedbackService struct {
	repo   repository.FeedbackRepository
	search searchService.SearchService
}

func NewFeedbackService(repo repository.FeedbackRepository, search searchService.SearchService) FeedbackService {
	return &feedbackService{
		repo:   repo,
		search: search,
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, userID uuid.UUID, input dto.CreateFeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
		Active:  true,
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexFeedback(feedback); err != nil {
			log.Printf("failed to index feedback %d: %v", feedback.ID, err)
		}
	}

	return feedback, nil
}

func (s *feedbackService) GetFeedbacks(ctx context.Context) ([]entity.Feedback, error) {
	return s.repo.FindAll(ctx)
}
