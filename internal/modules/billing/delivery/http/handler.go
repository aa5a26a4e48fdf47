package handler

import (
	"net/http"
	"strconv"

	"anphu.vn/residencehub/internal/modules/billing/dto"
	billingService "anphu.vn/residencehub/internal/modules/billing/service"
	commonDto "anphu.vn/residencehub/pkg/dto"
	"anphu.vn/residencehub/pkg/response"
	"anphu.vn/residencehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service billingService.BillingService
}

func NewBillingHandler(service billingService.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) GetServices(c *gin.Context) {
	services, err := h.service.GetServices(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services})
}

func (h *BillingHandler) GetBills(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var page commonDto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.GetBills(c.Request.Context(), userID, page)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *BillingHandler) GetBillServices(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	billID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	services, err := h.service.GetBillServices(c.Request.Context(), userID, uint(billID))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services})
}

func (h *BillingHandler) CreateBill(c *gin.Context) {
	var input dto.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	bill, err := h.service.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": bill})
}

func (h *BillingHandler) CreatePayment(c *gin.Context) {
	billID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	var input dto.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), uint(billID), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": payment})
}

func (h *BillingHandler) GetPayments(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var query dto.PaymentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.GetPayments(c.Request.Context(), userID, query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *BillingHandler) GetPayment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	payment, err := h.service.GetPayment(c.Request.Context(), userID, uint(id))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

// SubmitProof accepts a multipart form with the proof image under "image".
func (h *BillingHandler) SubmitProof(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	image := bindProofImage(c)
	defer image.Close()

	payment, err := h.service.SubmitProof(c.Request.Context(), userID, uint(id), image)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func bindProofImage(c *gin.Context) *commonDto.ImageFile {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil
	}

	return &commonDto.ImageFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	}
}
