package migrations

import (
	"log"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations creates all tables and seeds default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Staff{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.Invoice{},
		&models.DeliveryJob{},
		&models.DeliveryDriver{},
		&models.Feedback{},
		&models.Review{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds the staff login, the product catalog, and a demo
// driver so a fresh install is usable immediately.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	staffRepo := repository.NewStaffRepository(db)
	productRepo := repository.NewProductRepository(db)
	driverRepo := repository.NewDeliveryDriverRepository(db)

	// Default staff account
	existing, err := staffRepo.GetByStaffID("STF001")
	if err == nil && existing != nil {
		log.Println("Default staff account already exists")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		staff := &models.Staff{
			StaffID:      "STF001",
			Name:         "Default Staff",
			Email:        "staff@example.com",
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := staffRepo.Create(staff); err != nil {
			log.Printf("Warning: Failed to create default staff: %v", err)
		} else {
			log.Println("Default staff account created")
			log.Println("Staff ID: STF001")
			log.Println("Password: changeme123")
		}
	}

	// Product catalog seeded from the default price table
	for name, price := range pricing.DefaultPriceTable() {
		if _, err := productRepo.GetByName(name); err == nil {
			continue
		}
		product := &models.Product{
			ProductName: name,
			UnitPrice:   float64(price),
			Stock:       100,
		}
		if err := productRepo.Create(product); err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", name, err)
		}
	}

	// Demo driver
	drivers, err := driverRepo.GetAll()
	if err == nil && len(drivers) == 0 {
		driver := &models.DeliveryDriver{
			DriverID:      "DRV001",
			Name:          "Demo Driver",
			ContactNumber: "0000000000",
			IsAvailable:   true,
		}
		if err := driverRepo.Create(driver); err != nil {
			log.Printf("Warning: Failed to create demo driver: %v", err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
