package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService services.InvoiceService
}

func NewInvoiceHandler(invoiceService services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	preview, err := h.invoiceService.PreviewInvoice(uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, services.ErrOrderNotConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": "Order must be confirmed before invoicing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building invoice preview"})
		}
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var req struct {
		OrderID uint `json:"order_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.invoiceService.GenerateInvoice(req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, services.ErrOrderNotConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": "Order must be confirmed before invoicing"})
		case errors.Is(err, services.ErrDuplicateInvoice):
			c.JSON(http.StatusConflict, gin.H{"error": "An invoice already exists for this order. No new invoice was created."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating invoice"})
		}
		return
	}

	message := "Invoice created and email sent"
	if !result.EmailSent {
		message = "Invoice saved, but email failed to send. " + result.EmailError
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     message,
		"invoice":     result.Invoice,
		"email_sent":  result.EmailSent,
		"email_error": result.EmailError,
	})
}
