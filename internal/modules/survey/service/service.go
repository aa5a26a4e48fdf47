package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anphu.vn/residencehub/internal/entity"
	"anphu.vn/residencehub/internal/modules/survey/dto"
	"anphu.vn/residencehub/internal/modules/survey/repository"
	"anphu.vn/residencehub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveyService interface {
	GetForm(ctx context.Context, id uint) (*entity.SurveyForm, error)
	CreateForm(ctx context.Context, userID uuid.UUID, input dto.CreateSurveyFormInput) (*entity.SurveyForm, error)
	AddQuestionWithAnswers(ctx context.Context, formID uint, input dto.AddQuestionWithAnswersInput) ([]entity.SurveyResponse, error)
	GetResponses(ctx context.Context) ([]entity.SurveyResponse, error)
}

type surveyService struct {
	repo repository.SurveyRepository
}

func NewSurveyService(repo repository.SurveyRepository) SurveyService {
	return &surveyService{repo: repo}
}

func (s *surveyService) GetForm(ctx context.Context, id uint) (*entity.SurveyForm, error) {
	form, err := s.repo.FindFormByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey form not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return form, nil
}

func (s *surveyService) CreateForm(ctx context.Context, userID uuid.UUID, input dto.CreateSurveyFormInput) (*entity.SurveyForm, error) {
	form := &entity.SurveyForm{
		UserID:      &userID,
		Title:       input.Title,
		Description: input.Description,
		Active:      true,
	}

	if err := s.repo.CreateForm(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// AddQuestionWithAnswers records one question and all of its answers against
// the form, atomically.
func (s *surveyService) AddQuestionWithAnswers(ctx context.Context, formID uint, input dto.AddQuestionWithAnswersInput) ([]entity.SurveyResponse, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, fmt.Errorf("question text is required: %w", apperror.ErrInvalidInput)
	}
	if len(input.Answers) == 0 {
		return nil, fmt.Errorf("at least one answer is required: %w", apperror.ErrInvalidInput)
	}
	for _, answer := range input.Answers {
		if strings.TrimSpace(answer) == "" {
			return nil, fmt.Errorf("answers must not be empty: %w", apperror.ErrInvalidInput)
		}
	}

	if _, err := s.repo.FindFormByID(ctx, formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey form not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	question := &entity.SurveyQuestion{
		SurveyFormID: formID,
		Text:         input.Text,
		Active:       true,
	}

	return s.repo.CreateQuestionWithResponses(ctx, question, input.Answers)
}

func (s *surveyService) GetResponses(ctx context.Context) ([]entity.SurveyResponse, error) {
	return s.repo.FindResponses(ctx)
}
