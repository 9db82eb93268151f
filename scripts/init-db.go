package main

import (
	"fmt"
	"log"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/config"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/database"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/migrations"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/models"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations and seed defaults
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create a demo customer for local testing
	fmt.Println("Creating demo customer...")
	customerRepo := repository.NewCustomerRepository(db)

	existing, err := customerRepo.GetByEmail("jane.doe@example.com")
	if err == nil && existing != nil {
		fmt.Println("Demo customer already exists")
		fmt.Println("Database initialization completed successfully!")
		return
	}

	customer := &models.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "0123456789",
	}
	if err := customerRepo.Create(customer); err != nil {
		log.Printf("Warning: Failed to create demo customer: %v", err)
	} else {
		fmt.Println("Demo customer created successfully")
	}

	fmt.Println("Database initialization completed successfully!")
}
