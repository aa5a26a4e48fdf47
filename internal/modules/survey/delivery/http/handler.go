package handler

import (
	"net/http"
	"strconv"

	"anphu.vn/residencehub/internal/modules/survey/dto"
	surveyService "anphu.vn/residencehub/internal/modules/survey/service"
	"anphu.vn/residencehub/pkg/response"
	"anphu.vn/residencehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	service surveyService.SurveyService
}

func NewSurveyHandler(service surveyService.SurveyService) *SurveyHandler {
	return &SurveyHandler{service: service}
}

func (h *SurveyHandler) GetForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	form, err := h.service.GetForm(c.Request.Context(), uint(id))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": form})
}

func (h *SurveyHandler) CreateForm(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CreateSurveyFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	form, err := h.service.CreateForm(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": form})
}

func (h *SurveyHandler) AddQuestionWithAnswers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var input dto.AddQuestionWithAnswersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	responses, err := h.service.AddQuestionWithAnswers(c.Request.Context(), uint(id), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": responses})
}

func (h *SurveyHandler) GetResponses(c *gin.Context) {
	responses, err := h.service.GetResponses(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": responses})
}
