package config

import (
	"fmt"
	"log"
	"os"

	"github.com/nevilhulspas/caltrack/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Optional: the /parse-food logging path returns a 500 without it,
	// undo and the dashboard keep working.
	AnthropicAPIKey string

	Port string
}

func Load() *Config {
	// .env is a convenience for local runs; in deployment the
	// environment is set directly.
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Port:            os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.FoodLog{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}
