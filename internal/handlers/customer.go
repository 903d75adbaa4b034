package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type createCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

func (ch *CustomerHandler) Create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := ch.customerService.Create(c.Request.Context(), services.CustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": result.Customer, "message": result.Message})
}

type bulkCreateCustomersRequest struct {
	Input []createCustomerRequest `json:"input" binding:"required"`
}

func (ch *CustomerHandler) BulkCreate(c *gin.Context) {
	var req bulkCreateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inputs := make([]services.CustomerInput, 0, len(req.Input))
	for _, item := range req.Input {
		inputs = append(inputs, services.CustomerInput{
			Name:  item.Name,
			Email: item.Email,
			Phone: item.Phone,
		})
	}
	result, err := ch.customerService.BulkCreate(c.Request.Context(), inputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": result.Customers, "errors": result.Errors})
}

func (ch *CustomerHandler) List(c *gin.Context) {
	filter := types.CustomerFilter{
		NameContains:  c.Query("name_contains"),
		EmailContains: c.Query("email_contains"),
		OrderBy:       c.Query("order_by"),
	}
	var err error
	if filter.CreatedAtGte, err = timeParam(c, "created_at_gte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.CreatedAtLte, err = timeParam(c, "created_at_lte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customers, err := ch.customerService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
