// README: Config loader with env defaults for HTTP, DB, Redis, logging, and the fare tariff.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// FareConfig is the deployment tariff. Amounts are whole currency units
// (UGX carries no minor unit); rates follow the published campus tariff.
type FareConfig struct {
	BaseFare        int64
	PerKmRate       int64
	PerMinuteRate   int64
	StudentDiscount float64
	NightSurcharge  float64
	Currency        string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// Empty DSN selects the in-memory store mode.
		DSN string
	}
	Redis struct {
		// Empty Addr selects the in-memory geo index.
		Addr string
	}
	Log struct {
		Level string
	}
	Fare FareConfig
}

func Load() (Config, error) {
	// In local development the .env file supplies the environment; anywhere
	// else the variables are expected to already be set.
	if env := os.Getenv("CAMPUSRIDE_ENV"); env == "" || env == "local" {
		_ = godotenv.Load()
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CAMPUSRIDE_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("CAMPUSRIDE_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("CAMPUSRIDE_REDIS_ADDR", "")
	cfg.Log.Level = envOrDefault("CAMPUSRIDE_LOG_LEVEL", "info")

	cfg.Fare.BaseFare = envOrDefaultInt64("CAMPUSRIDE_FARE_BASE", 2000)
	cfg.Fare.PerKmRate = envOrDefaultInt64("CAMPUSRIDE_FARE_PER_KM", 500)
	cfg.Fare.PerMinuteRate = envOrDefaultInt64("CAMPUSRIDE_FARE_PER_MINUTE", 50)
	cfg.Fare.StudentDiscount = envOrDefaultFloat("CAMPUSRIDE_FARE_STUDENT_DISCOUNT", 0.10)
	cfg.Fare.NightSurcharge = envOrDefaultFloat("CAMPUSRIDE_FARE_NIGHT_SURCHARGE", 0.25)
	cfg.Fare.Currency = envOrDefault("CAMPUSRIDE_FARE_CURRENCY", "UGX")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
