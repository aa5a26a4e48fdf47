package handler

import (
	"net/http"

	"anphu.vn/residencehub/internal/modules/feedback/dto"
	feedbackService "anphu.vn/residencehub/internal/modules/feedback/service"
	"anphu.vn/residencehub/pkg/response"
	"anphu.vn/residencehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	service feedbackService.FeedbackService
}

func NewFeedbackHandler(service feedbackService.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CreateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	feedback, err := h.service.CreateFeedback(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": feedback})
}

func (h *FeedbackHandler) GetFeedbacks(c *gin.Context) {
	feedbacks, err := h.service.GetFeedbacks(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": feedbacks})
}
