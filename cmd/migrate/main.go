package main

import (
	"log"
	"os"

	"tile-visualizer-be/internal/model"
	"tile-visualizer-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate Schema
	err = db.AutoMigrate(
		&model.Chat{},
		&model.Tile{},
		&model.Home{},
		&model.GeneratedImage{},
	)
	if err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("✅ Migration completed successfully")
}
