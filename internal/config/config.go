package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port      string
	MySQLDSN  string
	DBName    string
	JWTSecret string
	RedisAddr string
	RedisDB   int
	RedisPass string
}

// Load builds Config from the environment, reading a .env file first when one
// exists. MYSQL_DSN and JWT_SECRET are mandatory; everything else defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		MySQLDSN:  os.Getenv("MYSQL_DSN"),
		DBName:    getEnv("DB_NAME", "fitness_tracker"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.MySQLDSN == "" {
		return nil, errors.New("MYSQL_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
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
