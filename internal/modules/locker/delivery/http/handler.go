package handler

import (
	"net/http"
	"strconv"

	"anphu.vn/residencehub/internal/modules/locker/dto"
	lockerService "anphu.vn/residencehub/internal/modules/locker/service"
	commonDto "anphu.vn/residencehub/pkg/dto"
	"anphu.vn/residencehub/pkg/response"
	"anphu.vn/residencehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type LockerHandler struct {
	service lockerService.LockerService
}

func NewLockerHandler(service lockerService.LockerService) *LockerHandler {
	return &LockerHandler{service: service}
}

func (h *LockerHandler) GetLockers(c *gin.Context) {
	var page commonDto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.GetLockers(c.Request.Context(), page)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *LockerHandler) CreateLocker(c *gin.Context) {
	var input dto.CreateLockerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	locker, err := h.service.CreateLocker(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": locker})
}

func (h *LockerHandler) GetLockerPackages(c *gin.Context) {
	lockerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	packages, err := h.service.GetLockerPackages(c.Request.Context(), uint(lockerID), c.Query("status"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": packages})
}

func (h *LockerHandler) CreatePackage(c *gin.Context) {
	lockerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var input dto.CreatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	pkg, err := h.service.CreatePackage(c.Request.Context(), uint(lockerID), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": pkg})
}

func (h *LockerHandler) UpdatePackageStatus(c *gin.Context) {
	lockerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	packageID, err := strconv.ParseUint(c.Param("pid"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var input dto.UpdatePackageStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	pkg, err := h.service.UpdatePackageStatus(c.Request.Context(), uint(lockerID), uint(packageID), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pkg})
}

func (h *LockerHandler) DeletePackage(c *gin.Context) {
	lockerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	packageID, err := strconv.ParseUint(c.Param("pid"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	if err := h.service.DeletePackage(c.Request.Context(), uint(lockerID), uint(packageID)); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LockerHandler) SearchPackages(c *gin.Context) {
	var query dto.PackageSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.SearchPackages(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
