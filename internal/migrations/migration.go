package migrations

import (
	"errors"
	"log"

	"pizza_delivery/internal/models"
	"pizza_delivery/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds default data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserAddress{},
		&models.Pizza{},
		&models.ExtraIngredient{},
		&models.Order{},
		&models.OrderItem{},
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

// createDefaultData seeds the admin account and the catalog.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	pizzaRepo := repository.NewPizzaRepository(db)
	extraRepo := repository.NewExtraRepository(db)

	// Check if admin already exists
	if _, err := userRepo.GetByEmail("admin@example.com"); err == nil {
		log.Println("Admin user already exists, skipping seed")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Creating admin user...")
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:         "Administrator",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         string(models.RoleAdmin),
		IsActive:     true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created successfully")
		log.Println("Email: admin@example.com")
		log.Println("Password: admin")
	}

	log.Println("Seeding pizza catalog...")
	for i := range DefaultPizzas {
		if err := pizzaRepo.Create(&DefaultPizzas[i]); err != nil {
			log.Printf("Warning: Failed to seed pizza %q: %v", DefaultPizzas[i].Name, err)
		}
	}

	log.Println("Seeding extra ingredients...")
	for i := range DefaultExtras {
		if err := extraRepo.Create(&DefaultExtras[i]); err != nil {
			log.Printf("Warning: Failed to seed extra %q: %v", DefaultExtras[i].Name, err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
