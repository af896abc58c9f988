package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// JWT
	JWTSecret string

	// Object storage
	StorageProvider string // "s3" or "local"
	LocalStorageDir string
	AWSAccessKey    string
	AWSSecretKey    string
	AWSRegion       string
	AWSBucket       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            os.Getenv("PORT"),
		Env:             os.Getenv("ENV"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StorageProvider: os.Getenv("STORAGE_PROVIDER"),
		LocalStorageDir: os.Getenv("LOCAL_STORAGE_DIR"),
		AWSAccessKey:    os.Getenv("AWS_ACCESS_KEY"),
		AWSSecretKey:    os.Getenv("AWS_SECRET_KEY"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		AWSBucket:       os.Getenv("AWS_BUCKET"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev_key_change_me"
	}
	if cfg.StorageProvider == "" {
		cfg.StorageProvider = "local"
	}
	if cfg.LocalStorageDir == "" {
		cfg.LocalStorageDir = "./uploads"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}

	return cfg
}
