package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"
	"github.com/Coder-GW/Order-Delivery-Management-System/pkg/mailer"

	"gorm.io/gorm"
)

var (
	ErrDuplicateInvoice  = errors.New("an invoice already exists for this order")
	ErrOrderNotConfirmed = errors.New("order must be confirmed before invoicing")
)

// MailSender sends the invoice email; satisfied by mailer.Client.
type MailSender interface {
	SendInvoiceEmail(req *mailer.InvoiceEmailRequest) (*mailer.InvoiceEmailResponse, error)
}

// PriceCache caches catalog unit prices; satisfied by redis.Client.
type PriceCache interface {
	GetUnitPrice(productName string) (float64, bool, error)
	SetUnitPrice(productName string, price float64, ttl time.Duration) error
}

// InvoicePreview is the display-ready invoice for a confirmed order.
type InvoicePreview struct {
	OrderID       uint            `json:"order_id"`
	CustomerID    uint            `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Line          pricing.LineItem `json:"line"`
	ItemsTotal    float64         `json:"items_total"`
	TotalAmount   float64         `json:"total_amount"`
}

// GenerateResult reports the persisted invoice together with the outcome of
// the email dispatch. The invoice is kept even when the email fails.
type GenerateResult struct {
	Invoice    *models.Invoice `json:"invoice"`
	EmailSent  bool            `json:"email_sent"`
	EmailError string          `json:"email_error,omitempty"`
}

type InvoiceService interface {
	PreviewInvoice(orderID uint) (*InvoicePreview, error)
	GenerateInvoice(orderID uint) (*GenerateResult, error)
}

type invoiceService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	mail         MailSender
	priceCache   PriceCache
	cacheTTL     time.Duration
}

func NewInvoiceService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	mail MailSender,
	priceCache PriceCache,
	cacheTTL time.Duration,
) InvoiceService {
	return &invoiceService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		mail:         mail,
		priceCache:   priceCache,
		cacheTTL:     cacheTTL,
	}
}

// PreviewInvoice rebuilds the line item from the order's stored descriptor
// and snapshot total. An unknown product resolves to a zero unit price and an
// indeterminate quantity; historical data gaps never fail the preview.
func (s *invoiceService) PreviewInvoice(orderID uint) (*InvoicePreview, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Status != string(models.OrderConfirmed) {
		return nil, ErrOrderNotConfirmed
	}

	name, _ := pricing.SplitDescriptor(order.Items)
	unitPrice, err := s.unitPriceFor(name)
	if err != nil {
		return nil, err
	}

	preview := &InvoicePreview{
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID,
		Line:        pricing.ResolveLine(order.Items, order.OrderTotal, unitPrice),
		ItemsTotal:  order.OrderTotal,
		TotalAmount: order.OrderTotal,
	}

	customer, err := s.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load customer: %w", err)
		}
		// Contact fields stay blank; the invoice itself is still previewable.
	} else {
		preview.CustomerName = customer.FullName()
		preview.CustomerEmail = customer.Email
	}

	return preview, nil
}

// unitPriceFor resolves a catalog unit price via the cache, falling back to
// the products table. A product with no catalog row yields 0.
func (s *invoiceService) unitPriceFor(name string) (float64, error) {
	if s.priceCache != nil {
		price, found, err := s.priceCache.GetUnitPrice(name)
		if err != nil {
			log.Printf("Warning: price cache lookup failed for %s: %v", name, err)
		} else if found {
			return price, nil
		}
	}

	product, err := s.productRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to look up unit price: %w", err)
	}

	if s.priceCache != nil {
		if err := s.priceCache.SetUnitPrice(name, product.UnitPrice, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache unit price for %s: %v", name, err)
		}
	}

	return product.UnitPrice, nil
}

// GenerateInvoice creates at most one invoice per order. The duplicate check
// is read-then-write, so concurrent generation for the same order is a known
// best-effort gap; the unique index on order_id is the backstop.
func (s *invoiceService) GenerateInvoice(orderID uint) (*GenerateResult, error) {
	preview, err := s.PreviewInvoice(orderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.invoiceRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("could not verify existing invoices: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateInvoice
	}

	invoice := &models.Invoice{
		OrderID:     preview.OrderID,
		CustomerID:  preview.CustomerID,
		ItemsTotal:  fmt.Sprintf("%.2f", preview.ItemsTotal),
		TotalAmount: fmt.Sprintf("%.2f", preview.TotalAmount),
	}

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	result := &GenerateResult{Invoice: invoice}

	if preview.CustomerEmail == "" {
		result.EmailError = "customer has no email address on file"
		return result, nil
	}

	_, err = s.mail.SendInvoiceEmail(&mailer.InvoiceEmailRequest{
		To:      preview.CustomerEmail,
		Name:    preview.CustomerName,
		Total:   preview.TotalAmount,
		OrderID: preview.OrderID,
	})
	if err != nil {
		// Invoice saved, email failed; surfaced, never retried.
		log.Printf("Warning: invoice %d saved but email failed: %v", invoice.InvoiceID, err)
		result.EmailError = err.Error()
		return result, nil
	}

	result.EmailSent = true
	return result, nil
}
