package handler

import (
	"net/http"
	"strconv"

	"anphu.vn/residencehub/internal/modules/family/dto"
	familyService "anphu.vn/residencehub/internal/modules/family/service"
	"anphu.vn/residencehub/pkg/response"
	"anphu.vn/residencehub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FamilyHandler struct {
	service familyService.FamilyService
}

func NewFamilyHandler(service familyService.FamilyService) *FamilyHandler {
	return &FamilyHandler{service: service}
}

func (h *FamilyHandler) RegisterFamilyMember(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	var input dto.RegisterFamilyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	family, err := h.service.RegisterFamilyMember(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": family})
}

func (h *FamilyHandler) GetFamilyMembers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	families, err := h.service.GetFamilyMembers(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FamilyListResponse{Data: families})
}

func (h *FamilyHandler) ApproveFamilyMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	family, err := h.service.ApproveFamilyMember(c.Request.Context(), uint(id))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": family})
}

func (h *FamilyHandler) IssueAccessCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	card, err := h.service.IssueAccessCard(c.Request.Context(), uint(id))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": card})
}
