package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/redis"
	"github.com/Coder-GW/Order-Delivery-Management-System/pkg/mailer"

	"gorm.io/gorm"
)

// In-memory repository stubs used across the service tests.

type fakeOrderRepo struct {
	orders  map[uint]*models.Order
	nextID  uint
	failAll bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*models.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	if r.failAll {
		return errors.New("store unavailable")
	}
	order.OrderID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	copied := *order
	r.orders[order.OrderID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	if r.failAll {
		return nil, errors.New("store unavailable")
	}
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetPendingConfirmation() ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if strings.Contains(strings.ToLower(o.Status), "pending confirmation") {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByStatus(status string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*models.Product{}}
	for _, p := range products {
		r.products[p.ProductName] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	r.products[product.ProductName] = product
	return nil
}

func (r *fakeProductRepo) GetByName(name string) (*models.Product, error) {
	product, ok := r.products[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) GetAll() ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) UpdateStock(id uint, stock int) error {
	for _, p := range r.products {
		if p.ProductID == id {
			p.Stock = stock
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[uint]*models.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeInvoiceRepo struct {
	invoices  []models.Invoice
	nextID    uint
	createErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{nextID: 1}
}

func (r *fakeInvoiceRepo) Create(invoice *models.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	invoice.InvoiceID = r.nextID
	r.nextID++
	r.invoices = append(r.invoices, *invoice)
	return nil
}

func (r *fakeInvoiceRepo) GetByOrderID(orderID uint) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.OrderID == orderID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByID(id uint) (*models.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceID == id {
			copied := inv
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStaffRepo struct {
	staff map[string]*models.Staff
}

func newFakeStaffRepo(staff ...*models.Staff) *fakeStaffRepo {
	r := &fakeStaffRepo{staff: map[string]*models.Staff{}}
	for _, s := range staff {
		r.staff[s.StaffID] = s
	}
	return r
}

func (r *fakeStaffRepo) Create(staff *models.Staff) error {
	r.staff[staff.StaffID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByStaffID(staffID string) (*models.Staff, error) {
	staff, ok := r.staff[staffID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return staff, nil
}

func (r *fakeStaffRepo) Update(staff *models.Staff) error {
	r.staff[staff.StaffID] = staff
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*redis.StaffSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*redis.StaffSession{}}
}

func (s *fakeSessionStore) SetSession(token string, session *redis.StaffSession, ttl time.Duration) error {
	s.sessions[token] = session
	return nil
}

func (s *fakeSessionStore) GetSession(token string) (*redis.StaffSession, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (s *fakeSessionStore) DeleteSession(token string) error {
	delete(s.sessions, token)
	return nil
}

type fakeMailer struct {
	sent    []*mailer.InvoiceEmailRequest
	sendErr error
}

func (m *fakeMailer) SendInvoiceEmail(req *mailer.InvoiceEmailRequest) (*mailer.InvoiceEmailResponse, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.sent = append(m.sent, req)
	return &mailer.InvoiceEmailResponse{Success: true}, nil
}

type fakePriceCache struct {
	prices map[string]float64
}

func newFakePriceCache() *fakePriceCache {
	return &fakePriceCache{prices: map[string]float64{}}
}

func (c *fakePriceCache) GetUnitPrice(name string) (float64, bool, error) {
	price, ok := c.prices[name]
	return price, ok, nil
}

func (c *fakePriceCache) SetUnitPrice(name string, price float64, ttl time.Duration) error {
	c.prices[name] = price
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.DeliveryJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.DeliveryJob{}}
}

func (r *fakeJobRepo) Create(job *models.DeliveryJob) error {
	r.jobs[job.JobID] = job
	return nil
}

func (r *fakeJobRepo) GetByJobID(jobID string) (*models.DeliveryJob, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetAll() ([]models.DeliveryJob, error) {
	var out []models.DeliveryJob
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) GetActive() ([]models.DeliveryJob, error) {
	var out []models.DeliveryJob
	for _, j := range r.jobs {
		if !j.IsTerminal() {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetByCustomerName(customerName string) ([]models.DeliveryJob, error) {
	var out []models.DeliveryJob
	for _, j := range r.jobs {
		if j.CustomerName == customerName {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(job *models.DeliveryJob) error {
	if _, ok := r.jobs[job.JobID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *job
	r.jobs[job.JobID] = &copied
	return nil
}

func (r *fakeJobRepo) ExistsDuplicate(customerName, address string, deliveryDate *time.Time) (bool, error) {
	for _, j := range r.jobs {
		if !strings.EqualFold(j.CustomerName, customerName) || !strings.EqualFold(j.DeliveryAddress, address) {
			continue
		}
		if j.DeliveryDate == nil && deliveryDate == nil {
			return true, nil
		}
		if j.DeliveryDate != nil && deliveryDate != nil && sameDay(*j.DeliveryDate, *deliveryDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeJobRepo) CountAssignedOnDate(driverID string, date time.Time) (int64, error) {
	var count int64
	for _, j := range r.jobs {
		if j.AssignedDriverID != driverID || j.DeliveryDate == nil {
			continue
		}
		if !sameDay(*j.DeliveryDate, date) {
			continue
		}
		if j.Status == string(models.JobAssigned) || j.Status == string(models.JobInTransit) {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) GetDriverScheduleOnDate(driverID string, date time.Time) ([]models.DeliveryJob, error) {
	var out []models.DeliveryJob
	for _, j := range r.jobs {
		if j.AssignedDriverID == driverID && j.DeliveryDate != nil && sameDay(*j.DeliveryDate, date) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

type fakeFeedbackRepo struct {
	feedback []models.Feedback
}

func (r *fakeFeedbackRepo) Create(feedback *models.Feedback) error {
	feedback.ID = uint(len(r.feedback) + 1)
	r.feedback = append(r.feedback, *feedback)
	return nil
}

func (r *fakeFeedbackRepo) GetByCustomerID(customerID uint) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.feedback {
		if f.CustomerID == customerID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	review.ID = uint(len(r.reviews) + 1)
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) GetByCustomerID(customerID uint) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.CustomerID == customerID {
			out = append(out, rv)
		}
	}
	return out, nil
}

type fakeDriverRepo struct {
	drivers map[string]*models.DeliveryDriver
}

func newFakeDriverRepo(drivers ...*models.DeliveryDriver) *fakeDriverRepo {
	r := &fakeDriverRepo{drivers: map[string]*models.DeliveryDriver{}}
	for _, d := range drivers {
		r.drivers[d.DriverID] = d
	}
	return r
}

func (r *fakeDriverRepo) Create(driver *models.DeliveryDriver) error {
	r.drivers[driver.DriverID] = driver
	return nil
}

func (r *fakeDriverRepo) GetByDriverID(driverID string) (*models.DeliveryDriver, error) {
	driver, ok := r.drivers[driverID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return driver, nil
}

func (r *fakeDriverRepo) GetAvailable() ([]models.DeliveryDriver, error) {
	var out []models.DeliveryDriver
	for _, d := range r.drivers {
		if d.IsAvailable {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDriverRepo) GetAll() ([]models.DeliveryDriver, error) {
	var out []models.DeliveryDriver
	for _, d := range r.drivers {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDriverRepo) Update(driver *models.DeliveryDriver) error {
	r.drivers[driver.DriverID] = driver
	return nil
}
