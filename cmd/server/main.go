package main

import (
	"log"

	"github.com/joho/godotenv"

	"finance-tracker-go/internal/config"
	"finance-tracker-go/internal/database"
	httpserver "finance-tracker-go/internal/http"
	"finance-tracker-go/internal/models"
)

func main() {
	_ = godotenv.Load(".env")

	database.Connect()
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.RecurringTransaction{},
		&models.BillReminder{},
		&models.Notification{},
		&models.SavingsGoal{},
		&models.SavingsContribution{},
		&models.Debt{},
		&models.Session{},
	)
	if err != nil {
		log.Fatal(err)
	}

	cfg := config.Load()
	r := httpserver.NewServer(cfg)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
