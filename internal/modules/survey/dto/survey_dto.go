package dto

type CreateSurveyFormInput struct {
	Title       string `json:"title" binding:"required,min=3,max=100"`
	Description string `json:"description"`
}

type AddQuestionWithAnswersInput struct {
	Text    string   `json:"text" binding:"required,min=1"`
	Answers []string `json:"answers" binding:"required,min=1,dive,required"`
}
