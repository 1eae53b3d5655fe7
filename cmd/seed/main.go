package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spendtrack/internal/config"
	"spendtrack/internal/db"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// baselineCurrencies is the ISO 4217 subset loaded on first run.
var baselineCurrencies = []model.Currency{
	{CurrencyID: "USD", Name: "US Dollar", IsActive: true},
	{CurrencyID: "EUR", Name: "Euro", IsActive: true},
	{CurrencyID: "GBP", Name: "Pound Sterling", IsActive: true},
	{CurrencyID: "INR", Name: "Indian Rupee", IsActive: true},
	{CurrencyID: "JPY", Name: "Japanese Yen", IsActive: true},
	{CurrencyID: "AUD", Name: "Australian Dollar", IsActive: true},
	{CurrencyID: "CAD", Name: "Canadian Dollar", IsActive: true},
	{CurrencyID: "CHF", Name: "Swiss Franc", IsActive: true},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Currency{},
		&model.Expense{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	currencyRepo := repository.NewCurrencyRepository(gormDB)

	seeded := 0
	for _, currency := range baselineCurrencies {
		_, err := currencyRepo.FindByID(ctx, currency.CurrencyID)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check currency %s: %v", currency.CurrencyID, err)
		}
		if err := currencyRepo.Create(ctx, &currency); err != nil {
			log.Fatalf("Failed to seed currency %s: %v", currency.CurrencyID, err)
		}
		seeded++
	}
	log.Printf("Seeded %d currencies (%d already present)", seeded, len(baselineCurrencies)-seeded)

	// Optional demo user for local development
	email := os.Getenv("SEED_USER_EMAIL")
	password := os.Getenv("SEED_USER_PASSWORD")
	if email == "" || password == "" {
		log.Println("SEED_USER_EMAIL/SEED_USER_PASSWORD not set, skipping demo user")
		return
	}

	userRepo := repository.NewUserRepository(gormDB)
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Demo user %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	if err := userRepo.Create(ctx, &model.User{Email: email, PasswordHash: string(hash)}); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s", email)
}
