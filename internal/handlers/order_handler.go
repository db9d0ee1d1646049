package handlers

import (
	"net/http"
	"strconv"
	"trade_manager/internal/models"
	"trade_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService   services.OrderService
	productService services.ProductService
}

func NewOrderHandler(orderService services.OrderService, productService services.ProductService) *OrderHandler {
	return &OrderHandler{orderService: orderService, productService: productService}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var clientID *uint
	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
			return
		}
		v := uint(id)
		clientID = &v
	}

	orders, err := h.orderService.ListOrders(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	// Quantity arrives as the raw form string; the service validates it.
	var req struct {
		ClientID  uint   `json:"client_id"`
		ProductID uint   `json:"product_id"`
		Quantity  string `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(req.ClientID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req struct {
		Status   string `json:"status"`
		Quantity string `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	role := c.GetString(ctxRole)
	if err := h.orderService.EditOrder(orderID, role, models.OrderStatus(req.Status), req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *OrderHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
