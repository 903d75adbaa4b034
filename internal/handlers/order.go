package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	OrderDate  *time.Time  `json:"order_date"`
}

func (oh *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := oh.orderService.Create(c.Request.Context(), services.OrderInput{
		CustomerID: req.CustomerID,
		ProductIDs: req.ProductIDs,
		OrderDate:  req.OrderDate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": result.Order, "message": result.Message})
}

func (oh *OrderHandler) List(c *gin.Context) {
	filter := types.OrderFilter{
		CustomerNameContains: c.Query("customer_name_contains"),
		ProductNameContains:  c.Query("product_name_contains"),
		OrderBy:              c.Query("order_by"),
	}
	var err error
	if filter.TotalAmountGte, err = floatParam(c, "total_amount_gte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.TotalAmountLte, err = floatParam(c, "total_amount_lte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.OrderDateGte, err = timeParam(c, "order_date_gte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.OrderDateLte, err = timeParam(c, "order_date_lte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orders, err := oh.orderService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
