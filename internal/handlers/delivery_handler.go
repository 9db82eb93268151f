package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveryService services.DeliveryService
}

func NewDeliveryHandler(deliveryService services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

func (h *DeliveryHandler) CreateJob(c *gin.Context) {
	var req struct {
		CustomerName     string     `json:"customer_name"`
		DeliveryAddress  string     `json:"delivery_address"`
		GoodsDescription string     `json:"goods_description"`
		DeliveryDate     *time.Time `json:"delivery_date"`
		TotalAmount      float64    `json:"total_amount"`
		AmountPaid       float64    `json:"amount_paid"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	job := &models.DeliveryJob{
		CustomerName:     req.CustomerName,
		DeliveryAddress:  req.DeliveryAddress,
		GoodsDescription: req.GoodsDescription,
		DeliveryDate:     req.DeliveryDate,
		TotalAmount:      req.TotalAmount,
		AmountPaid:       req.AmountPaid,
	}

	if err := h.deliveryService.CreateJob(job); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingJobFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateJob):
			c.JSON(http.StatusConflict, gin.H{"error": "A delivery job already exists for this customer, address and date"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating delivery job"})
		}
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *DeliveryHandler) GetJob(c *gin.Context) {
	job, err := h.deliveryService.GetJob(c.Param("job_id"))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading delivery job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *DeliveryHandler) GetActiveJobs(c *gin.Context) {
	jobs, err := h.deliveryService.GetActiveJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading delivery jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *DeliveryHandler) RegisterDriver(c *gin.Context) {
	var driver models.DeliveryDriver
	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.deliveryService.RegisterDriver(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

func (h *DeliveryHandler) GetAvailableDrivers(c *gin.Context) {
	drivers, err := h.deliveryService.GetAvailableDrivers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading drivers"})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// FindAvailableDriver answers which driver could take a job on the requested
// date, honoring availability and the per-day cap.
func (h *DeliveryHandler) FindAvailableDriver(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	driver, err := h.deliveryService.FindAvailableDriver(date)
	if err != nil {
		if errors.Is(err, services.ErrNoDriverAvailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No driver is available for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error finding driver"})
		return
	}

	c.JSON(http.StatusOK, driver)
}

func (h *DeliveryHandler) GetDriverSchedule(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	jobs, err := h.deliveryService.DriverSchedule(c.Param("driver_id"), date)
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading schedule"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *DeliveryHandler) SetDriverAvailability(c *gin.Context) {
	driverID := c.Param("driver_id")

	var req struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.deliveryService.SetDriverAvailability(driverID, *req.IsAvailable); err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating driver"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver availability updated"})
}

func (h *DeliveryHandler) AssignJob(c *gin.Context) {
	jobID := c.Param("job_id")

	var req struct {
		DriverID string `json:"driver_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.deliveryService.AssignJob(jobID, req.DriverID); err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery job not found"})
		case errors.Is(err, services.ErrDriverNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		case errors.Is(err, services.ErrDriverUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Driver is not available"})
		case errors.Is(err, services.ErrDriverFullyBooked):
			c.JSON(http.StatusConflict, gin.H{"error": "Driver has reached the daily job limit"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error assigning job"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job assigned"})
}

func (h *DeliveryHandler) UpdateJobStatus(c *gin.Context) {
	jobID := c.Param("job_id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.deliveryService.UpdateJobStatus(jobID, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery job not found"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating job status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
