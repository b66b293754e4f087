package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	AppEnv          string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	StripeSecretKey string
	PaymentCurrency string
	SwaggerHost     string
	MenuCacheTTL    time.Duration
}

// Load builds Config from the environment, reading a .env file first when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "3000"),
		AppEnv:          getEnv("APP_ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", mongoURIFromParts()),
		MongoDatabase:   getEnv("MONGO_DATABASE", "bistroDb"),
		RedisAddr:       getEnvAllowEmpty("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", "usd"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		MenuCacheTTL:    getEnvDuration("MENU_CACHE_TTL", 5*time.Minute),
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET must be set")
	}
	if c.MongoURI == "" {
		return errors.New("MONGO_URI must be set")
	}
	return nil
}

// IsProduction reports whether the server runs with production logging.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// mongoURIFromParts builds an Atlas SRV URI from DB_USER, DB_PASS and DB_HOST
// when MONGO_URI is not given. Falls back to a local server.
func mongoURIFromParts() string {
	user, pass, host := os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_HOST")
	if user == "" || host == "" {
		return "mongodb://localhost:27017"
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty falls back to def only when key is unset, so an explicit
// empty value survives.
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
