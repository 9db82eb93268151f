package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder is the customer-facing submission: raw item name and quantity in,
// priced pending order out.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		CustomerID uint   `json:"customer_id"`
		Item       string `json:"item"`
		Quantity   string `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.PlaceOrder(req.CustomerID, req.Item, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown item. Check the catalog and try again."})
		case errors.Is(err, pricing.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive whole number"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetPendingOrders(c *gin.Context) {
	orders, err := h.orderService.GetPendingOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetConfirmedOrders(c *gin.Context) {
	orders, err := h.orderService.GetConfirmedOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderService.GetOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderService.ConfirmOrder(uint(id))
	if err != nil {
		var missingErr *services.MissingFieldsError
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.As(err, &missingErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": missingErr.Error()})
		case errors.Is(err, services.ErrOrderNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Order is not pending confirmation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error confirming order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order confirmed successfully",
		"order":   order,
	})
}

func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	orders, err := h.orderService.GetOrdersByCustomer(uint(customerID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
