package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/the1kimko/book-rental-management-system/models"
)

// LoadEnv pulls a local .env into the process if one exists. Missing file is
// fine; deployed environments set real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
}

type Config struct {
	// DatabaseURL empty means run on the in-memory store (dev/demo mode).
	DatabaseURL string
	RedisAddr   string
	RedisPwd    string
	Port        string
	WebOrigin   string

	LoanPeriod    time.Duration
	LateFeePerDay float64
	CatalogTTL    time.Duration
}

func Load() Config {
	return Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPwd:      os.Getenv("REDIS_PASSWORD"),
		Port:          getenv("PORT", "3001"),
		WebOrigin:     getenv("WEB_ORIGIN", "http://localhost:5173"),
		LoanPeriod:    time.Duration(getint("LOAN_PERIOD_DAYS", 14)) * 24 * time.Hour,
		LateFeePerDay: getfloat("LATE_FEE_PER_DAY", models.DefaultLateFeePerDay),
		CatalogTTL:    time.Duration(getint("CATALOG_CACHE_TTL_SECONDS", 30)) * time.Second,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
