package dto

type CreateFeedbackInput struct {
	Subject string `json:"subject" binding:"required,min=3,max=100"`
	Message string `json:"message" binding:"required,min=3"`
}
