package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerAddr       string
	GinMode          string
	LogLevel         string
	SnowflakeNode    int64
	CORSAllowOrigins string
}

func Load() *Config {
	// Best effort: a missing .env file just means plain environment config.
	_ = godotenv.Load()

	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBPath:           getEnv("DB_PATH", "./assets/main.db"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "kanban"),
		DBPassword:       getEnv("DB_PASSWORD", "kanban"),
		DBName:           getEnv("DB_NAME", "kanban"),
		ServerAddr:       getEnv("SERVER_ADDR", ":5000"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SnowflakeNode:    getEnvInt64("SNOWFLAKE_NODE", 42),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
