package services

import (
	"fmt"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"
)

// statusMessages maps a delivery status to its customer-facing message. Keys
// must match the status values the confirmation workflow actually writes;
// the canonical spelling is "Delivered" on both sides.
var statusMessages = map[string]string{
	string(models.JobPending):   "Please wait as your order is being processed",
	string(models.JobConfirmed): "Your order has been confirmed for delivery",
	string(models.JobAssigned):  "A driver has been assigned to deliver your goods",
	string(models.JobInTransit): "Your goods are on their way to their destination",
	string(models.JobDelivered): "Your goods have been delivered to the location",
	string(models.JobCancelled): "Your delivery has been cancelled",
}

// StatusMessage returns the customer-facing message for a status, or the
// empty string when the status has no entry.
func StatusMessage(status string) string {
	return statusMessages[status]
}

// TrackedJob is the customer-facing view of a delivery job.
type TrackedJob struct {
	JobID           string     `json:"job_id"`
	CustomerName    string     `json:"customer_name"`
	Goods           []string   `json:"goods"`
	Status          string     `json:"status"`
	StatusMessage   string     `json:"status_message"`
	DeliveryAddress string     `json:"delivery_address"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	TotalAmount     float64    `json:"total_amount"`
	DisplayTotal    string     `json:"display_total"`
}

type TrackingService interface {
	ListJobs() ([]TrackedJob, error)
	ListJobsByCustomer(customerName string) ([]TrackedJob, error)
	CustomerOrders(customerID uint) ([]models.Order, error)
}

type trackingService struct {
	jobRepo   repository.DeliveryJobRepository
	orderRepo repository.OrderRepository
}

func NewTrackingService(jobRepo repository.DeliveryJobRepository, orderRepo repository.OrderRepository) TrackingService {
	return &trackingService{jobRepo: jobRepo, orderRepo: orderRepo}
}

func (s *trackingService) ListJobs() ([]TrackedJob, error) {
	jobs, err := s.jobRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return trackedViews(jobs), nil
}

func (s *trackingService) ListJobsByCustomer(customerName string) ([]TrackedJob, error) {
	jobs, err := s.jobRepo.GetByCustomerName(customerName)
	if err != nil {
		return nil, err
	}
	return trackedViews(jobs), nil
}

// CustomerOrders is the customer's own order history, newest first.
func (s *trackingService) CustomerOrders(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func trackedViews(jobs []models.DeliveryJob) []TrackedJob {
	views := make([]TrackedJob, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, TrackedJob{
			JobID:           job.JobID,
			CustomerName:    job.CustomerName,
			Goods:           pricing.DisplayGoods(job.GoodsDescription),
			Status:          job.Status,
			StatusMessage:   StatusMessage(job.Status),
			DeliveryAddress: job.DeliveryAddress,
			DeliveryDate:    job.DeliveryDate,
			TotalAmount:     job.TotalAmount,
			DisplayTotal:    fmt.Sprintf("$%.2f", job.TotalAmount),
		})
	}
	return views
}
