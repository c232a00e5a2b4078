package main

import (
	"context"
	"log"
	"os"
	"time"

	"bondify-be/internal/catalog"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/repository/unitofwork"
	"bondify-be/internal/service"
	"bondify-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	bundle, err := catalog.Default()
	if err != nil {
		color.Red("Error: Failed to load catalog bundle: %v", err)
		os.Exit(1)
	}

	seeded, err := service.SeedDatabase(context.Background(), unitofwork.NewRepositoryFactory(db), bundle, time.Now(), logger.NewNopLogger())
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}
	if !seeded {
		color.Yellow("Database already contains data, skipping seed")
		return
	}
	color.Green("✅ Seeded %d categories and %d conversation packs", len(bundle.Categories), len(bundle.Packs))
}
