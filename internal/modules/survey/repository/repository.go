package repository

import (
	"context"

	"anphu.vn/residencehub/internal/entity"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	CreateForm(ctx context.Context, form *entity.SurveyForm) error
	FindFormByID(ctx context.Context, id uint) (*entity.SurveyForm, error)
	CreateQuestionWithResponses(ctx context.Context, question *entity.SurveyQuestion, answers []string) ([]entity.SurveyResponse, error)
	FindResponses(ctx context.Context) ([]entity.SurveyResponse, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) CreateForm(ctx context.Context, form *entity.SurveyForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *surveyRepository) FindFormByID(ctx context.Context, id uint) (*entity.SurveyForm, error) {
	var form entity.SurveyForm
	if err := r.db.WithContext(ctx).
		Preload("Questions", "active = ?", true).
		First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// CreateQuestionWithResponses writes the question and one response row per
// answer in a single transaction. Either everything lands or nothing does.
func (r *surveyRepository) CreateQuestionWithResponses(ctx context.Context, question *entity.SurveyQuestion, answers []string) ([]entity.SurveyResponse, error) {
	var responses []entity.SurveyResponse

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}

		responses = make([]entity.SurveyResponse, 0, len(answers))
		for _, answer := range answers {
			responses = append(responses, entity.SurveyResponse{
				SurveyFormID:     question.SurveyFormID,
				SurveyQuestionID: question.ID,
				Answer:           answer,
				Active:           true,
			})
		}

		return tx.Create(&responses).Error
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

func (r *surveyRepository) FindResponses(ctx context.Context) ([]entity.SurveyResponse, error) {
	var responses []entity.SurveyResponse
	if err := r.db.WithContext(ctx).
		Preload("SurveyQuestion").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
