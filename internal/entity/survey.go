package entity

import (
	"time"

	"github.com/google/uuid"
)

type SurveyForm struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User        *User            `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Title       string           `gorm:"size:100;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Questions   []SurveyQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Active      bool             `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type SurveyQuestion struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SurveyFormID uint      `gorm:"not null;index" json:"survey_form_id"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SurveyResponse links an answer to a question and its form. The question must
// belong to the referenced form.
type SurveyResponse struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	SurveyFormID     uint            `gorm:"not null;index" json:"survey_form_id"`
	SurveyQuestionID uint            `gorm:"not null;index" json:"survey_question_id"`
	SurveyQuestion   *SurveyQuestion `gorm:"constraint:OnDelete:CASCADE" json:"survey_question,omitempty"`
	Answer           string          `gorm:"type:text;not null" json:"answer"`
	Active           bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
