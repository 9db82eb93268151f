package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending confirmation")
)

// MissingFieldsError reports which required order fields blocked confirmation.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "order cannot be confirmed, missing: " + strings.Join(e.Fields, ", ")
}

type OrderService interface {
	PlaceOrder(customerID uint, rawItem, rawQuantity string) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetPendingOrders() ([]models.Order, error)
	GetConfirmedOrders() ([]models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	ConfirmOrder(id uint) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	priceTable  pricing.PriceTable
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, priceTable pricing.PriceTable) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, priceTable: priceTable}
}

// PlaceOrder quotes the submitted item against the fixed price table and
// persists the order as a snapshot: sanitized name only in the descriptor,
// the computed total never recomputed afterward.
func (s *orderService) PlaceOrder(customerID uint, rawItem, rawQuantity string) (*models.Order, error) {
	line, err := pricing.Quote(s.priceTable, rawItem, rawQuantity)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID: customerID,
		Items:      line.Name,
		Status:     string(models.OrderPendingConfirmation),
		OrderTotal: float64(line.Total),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.decrementStock(line.Name, line.Quantity)

	return order, nil
}

// decrementStock is best effort: the catalog row may not exist for every
// price-table item and a stale stock figure must never block an order.
func (s *orderService) decrementStock(name string, quantity int) {
	product, err := s.productRepo.GetByName(name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Warning: stock lookup failed for %s: %v", name, err)
		}
		return
	}

	if product.Stock < quantity {
		log.Printf("Warning: %s stock (%d) below ordered quantity (%d)", name, product.Stock, quantity)
		return
	}

	if err := s.productRepo.UpdateStock(product.ProductID, product.Stock-quantity); err != nil {
		log.Printf("Warning: failed to update stock for %s: %v", name, err)
	}
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetPendingOrders() ([]models.Order, error) {
	return s.orderRepo.GetPendingConfirmation()
}

func (s *orderService) GetConfirmedOrders() ([]models.Order, error) {
	return s.orderRepo.GetByStatus(string(models.OrderConfirmed))
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

// ConfirmOrder moves a pending order to Confirmed. Orders missing required
// fields cannot be confirmed; any other status transition is rejected.
func (s *orderService) ConfirmOrder(id uint) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if missing := missingOrderFields(order); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if !strings.Contains(strings.ToLower(order.Status), strings.ToLower(string(models.OrderPendingConfirmation))) {
		return nil, ErrOrderNotPending
	}

	if err := s.orderRepo.UpdateStatus(id, string(models.OrderConfirmed)); err != nil {
		return nil, fmt.Errorf("failed to confirm order: %w", err)
	}

	order.Status = string(models.OrderConfirmed)
	return order, nil
}

func missingOrderFields(order *models.Order) []string {
	var missing []string
	if order.CustomerID == 0 {
		missing = append(missing, "Customer ID")
	}
	if order.Items == "" {
		missing = append(missing, "Items")
	}
	if order.Status == "" {
		missing = append(missing, "Status")
	}
	return missing
}
