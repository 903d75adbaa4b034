package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type createProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Stock int      `json:"stock"`
}

func (ph *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := ph.productService.Create(c.Request.Context(), services.ProductInput{
		Name:  req.Name,
		Price: *req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": result.Product, "message": result.Message})
}

func (ph *ProductHandler) List(c *gin.Context) {
	filter := types.ProductFilter{
		NameContains: c.Query("name_contains"),
		OrderBy:      c.Query("order_by"),
	}
	var err error
	if filter.PriceGte, err = floatParam(c, "price_gte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.PriceLte, err = floatParam(c, "price_lte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.StockGte, err = intParam(c, "stock_gte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filter.StockLte, err = intParam(c, "stock_lte"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	products, err := ph.productService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (ph *ProductHandler) UpdateLowStock(c *gin.Context) {
	result, err := ph.productService.UpdateLowStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated_products": result.Products, "message": result.Message})
}
