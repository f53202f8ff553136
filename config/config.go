package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/models"
)

type Config struct {
	Port          string
	JWTSecret     []byte
	JWTExpiry     time.Duration
	OTPExpiry     time.Duration
	AdminEmail    string
	AdminPassword string
}

// Load reads .env (if present) and environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment")
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		JWTExpiry:     durationEnv("JWT_EXPIRES_HOURS", 168) * time.Hour,
		OTPExpiry:     durationEnv("OTP_TTL_MINUTES", 15) * time.Minute,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if len(cfg.JWTSecret) == 0 {
		log.Fatal().Msg("JWT_SECRET not set")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid duration env")
	}
	return time.Duration(fallback)
}

// InitDB connects to postgres and migrates the schema.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getenv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	return db
}

// Migrate applies the schema; shared with the sqlite test harness.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.Exercise{},
		&models.NutritionEntry{},
		&models.FoodItem{},
		&models.ProgressEntry{},
	)
}
