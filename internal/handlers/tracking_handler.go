package handlers

import (
	"net/http"
	"strconv"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	trackingService services.TrackingService
}

func NewTrackingHandler(trackingService services.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// ListJobs is the customer-facing tracking table: goods split for display,
// status paired with its descriptive message.
func (h *TrackingHandler) ListJobs(c *gin.Context) {
	customerName := c.Query("customer_name")

	var (
		jobs []services.TrackedJob
		err  error
	)
	if customerName != "" {
		jobs, err = h.trackingService.ListJobsByCustomer(customerName)
	} else {
		jobs, err = h.trackingService.ListJobs()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *TrackingHandler) CustomerOrders(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	orders, err := h.trackingService.CustomerOrders(uint(customerID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
