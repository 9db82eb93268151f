package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound       = errors.New("delivery job not found")
	ErrDuplicateJob      = errors.New("a delivery job already exists for this customer, address and date")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrDriverUnavailable = errors.New("driver is not available")
	ErrDriverFullyBooked = errors.New("driver has reached the daily job limit")
	ErrNoDriverAvailable = errors.New("no driver is available for this date")
	ErrInvalidStatus     = errors.New("unknown delivery status")
	ErrMissingJobFields  = errors.New("customer name and delivery address are required")
)

// MaxJobsPerDriverPerDay caps how many active jobs a driver may carry on a
// single delivery date.
const MaxJobsPerDriverPerDay = 3

var validJobStatuses = map[string]bool{
	string(models.JobPending):   true,
	string(models.JobConfirmed): true,
	string(models.JobAssigned):  true,
	string(models.JobInTransit): true,
	string(models.JobDelivered): true,
	string(models.JobCancelled): true,
}

type DeliveryService interface {
	CreateJob(job *models.DeliveryJob) error
	GetJob(jobID string) (*models.DeliveryJob, error)
	GetActiveJobs() ([]models.DeliveryJob, error)
	RegisterDriver(driver *models.DeliveryDriver) error
	GetAvailableDrivers() ([]models.DeliveryDriver, error)
	FindAvailableDriver(date time.Time) (*models.DeliveryDriver, error)
	DriverSchedule(driverID string, date time.Time) ([]models.DeliveryJob, error)
	SetDriverAvailability(driverID string, available bool) error
	AssignJob(jobID, driverID string) error
	UpdateJobStatus(jobID, status string) error
}

type deliveryService struct {
	jobRepo    repository.DeliveryJobRepository
	driverRepo repository.DeliveryDriverRepository
}

func NewDeliveryService(jobRepo repository.DeliveryJobRepository, driverRepo repository.DeliveryDriverRepository) DeliveryService {
	return &deliveryService{jobRepo: jobRepo, driverRepo: driverRepo}
}

// CreateJob registers a new delivery job, rejecting duplicates for the same
// customer, address and delivery day.
func (s *deliveryService) CreateJob(job *models.DeliveryJob) error {
	if job.CustomerName == "" || job.DeliveryAddress == "" {
		return ErrMissingJobFields
	}

	duplicate, err := s.jobRepo.ExistsDuplicate(job.CustomerName, job.DeliveryAddress, job.DeliveryDate)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate job: %w", err)
	}
	if duplicate {
		return ErrDuplicateJob
	}

	if job.JobID == "" {
		job.JobID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = string(models.JobPending)
	}

	return s.jobRepo.Create(job)
}

func (s *deliveryService) GetJob(jobID string) (*models.DeliveryJob, error) {
	job, err := s.jobRepo.GetByJobID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *deliveryService) GetActiveJobs() ([]models.DeliveryJob, error) {
	return s.jobRepo.GetActive()
}

func (s *deliveryService) RegisterDriver(driver *models.DeliveryDriver) error {
	if driver.DriverID == "" || driver.Name == "" {
		return errors.New("driver id and name are required")
	}
	driver.IsAvailable = true
	return s.driverRepo.Create(driver)
}

func (s *deliveryService) GetAvailableDrivers() ([]models.DeliveryDriver, error) {
	return s.driverRepo.GetAvailable()
}

// FindAvailableDriver picks the first available driver with room under the
// per-day cap for the given delivery date.
func (s *deliveryService) FindAvailableDriver(date time.Time) (*models.DeliveryDriver, error) {
	drivers, err := s.driverRepo.GetAvailable()
	if err != nil {
		return nil, err
	}

	for i := range drivers {
		count, err := s.jobRepo.CountAssignedOnDate(drivers[i].DriverID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to count driver jobs: %w", err)
		}
		if count < MaxJobsPerDriverPerDay {
			return &drivers[i], nil
		}
	}

	return nil, ErrNoDriverAvailable
}

// DriverSchedule lists a driver's jobs for one delivery day.
func (s *deliveryService) DriverSchedule(driverID string, date time.Time) ([]models.DeliveryJob, error) {
	if _, err := s.driverRepo.GetByDriverID(driverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return s.jobRepo.GetDriverScheduleOnDate(driverID, date)
}

func (s *deliveryService) SetDriverAvailability(driverID string, available bool) error {
	driver, err := s.driverRepo.GetByDriverID(driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDriverNotFound
		}
		return err
	}

	driver.IsAvailable = available
	return s.driverRepo.Update(driver)
}

// AssignJob hands a job to a driver, honoring availability and the per-day
// cap, and moves the job to Assigned.
func (s *deliveryService) AssignJob(jobID, driverID string) error {
	job, err := s.GetJob(jobID)
	if err != nil {
		return err
	}

	driver, err := s.driverRepo.GetByDriverID(driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDriverNotFound
		}
		return err
	}

	if !driver.IsAvailable {
		return ErrDriverUnavailable
	}

	if job.DeliveryDate != nil {
		count, err := s.jobRepo.CountAssignedOnDate(driver.DriverID, *job.DeliveryDate)
		if err != nil {
			return fmt.Errorf("failed to count driver jobs: %w", err)
		}
		if count >= MaxJobsPerDriverPerDay {
			return ErrDriverFullyBooked
		}
	}

	job.AssignedDriverID = driver.DriverID
	job.Status = string(models.JobAssigned)

	if err := s.jobRepo.Update(job); err != nil {
		return fmt.Errorf("failed to assign job: %w", err)
	}

	s.notifyDriver(driver, job)
	return nil
}

// UpdateJobStatus sets a new status for a job after validating it against the
// canonical status set.
func (s *deliveryService) UpdateJobStatus(jobID, status string) error {
	if !validJobStatuses[status] {
		return ErrInvalidStatus
	}

	job, err := s.GetJob(jobID)
	if err != nil {
		return err
	}

	job.Status = status
	if err := s.jobRepo.Update(job); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	log.Printf("Delivery update for job %s (%s): status is now %s", job.JobID, job.CustomerName, status)
	return nil
}

func (s *deliveryService) notifyDriver(driver *models.DeliveryDriver, job *models.DeliveryJob) {
	scheduled := "Not scheduled yet"
	if job.DeliveryDate != nil {
		scheduled = job.DeliveryDate.Format(time.RFC1123)
	}

	log.Printf("Notifying driver %s (%s): new job %s for %s at %s, goods %v, scheduled %s",
		driver.Name, driver.ContactNumber,
		job.JobID, job.CustomerName, job.DeliveryAddress,
		pricing.DisplayGoods(job.GoodsDescription), scheduled)
}
