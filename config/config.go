package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	APP_ENV    string
	APP_URL    string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	// Fee amounts are minor units (cents). Validated here so a bad value
	// kills the process at startup instead of failing mid-checkout.
	REGISTRATION_FEE_AMOUNT   int64
	REGISTRATION_FEE_CURRENCY string
	PROFILE_UNLOCK_AMOUNT     int64
	PROFILE_UNLOCK_CURRENCY   string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	CLOUDINARY_CLOUD_NAME string
	CLOUDINARY_API_KEY    string
	CLOUDINARY_API_SECRET string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	APP_ENV = getEnv("APP_ENV", "development")
	APP_URL = getEnv("APP_URL", "http://localhost:3000")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = mustEnv("STRIPE_WEBHOOK_SECRET")

	REGISTRATION_FEE_AMOUNT = mustFeeAmount("REGISTRATION_FEE_AMOUNT", 1000)
	REGISTRATION_FEE_CURRENCY = mustCurrency("REGISTRATION_FEE_CURRENCY", "usd")
	PROFILE_UNLOCK_AMOUNT = mustFeeAmount("PROFILE_UNLOCK_AMOUNT", 499)
	PROFILE_UNLOCK_CURRENCY = mustCurrency("PROFILE_UNLOCK_CURRENCY", "usd")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	CLOUDINARY_CLOUD_NAME = getEnv("CLOUDINARY_CLOUD_NAME", "")
	CLOUDINARY_API_KEY = getEnv("CLOUDINARY_API_KEY", "")
	CLOUDINARY_API_SECRET = getEnv("CLOUDINARY_API_SECRET", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func mustFeeAmount(key string, fallback int64) int64 {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 {
		log.Fatalf("%s must be a positive integer amount in minor units, got %q", key, raw)
	}
	return amount
}

func mustCurrency(key string, fallback string) string {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	cur := strings.ToLower(strings.TrimSpace(raw))
	if !isCurrencyCode(cur) {
		log.Fatalf("%s must be a lowercase ISO 4217 code, got %q", key, raw)
	}
	return cur
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
