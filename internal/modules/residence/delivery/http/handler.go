package handler

import (
	"net/http"

	"anphu.vn/residencehub/internal/modules/residence/dto"
	residenceService "anphu.vn/residencehub/internal/modules/residence/service"
	"anphu.vn/residencehub/pkg/response"
	"anphu.vn/residencehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ResidenceHandler struct {
	service residenceService.ResidenceService
}

func NewResidenceHandler(service residenceService.ResidenceService) *ResidenceHandler {
	return &ResidenceHandler{service: service}
}

func (h *ResidenceHandler) GetApartments(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	apartments, err := h.service.GetApartments(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": apartments})
}

func (h *ResidenceHandler) CreateApartment(c *gin.Context) {
	var input dto.CreateApartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	apartment, err := h.service.CreateApartment(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": apartment})
}

func (h *ResidenceHandler) GetContracts(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	contracts, err := h.service.GetContracts(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contracts})
}

func (h *ResidenceHandler) CreateContract(c *gin.Context) {
	var input dto.CreateContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	contract, err := h.service.CreateContract(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": contract})
}
