package main

import "os"

// Config holds the environment configuration for the catalog service.
type Config struct {
	Port     string
	MongoURL string
	DBName   string
	RedisURL string
	Env      string
}

// LoadConfig reads configuration from environment variables with sensible
// defaults for local development.
func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "8082"),
		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "bazaar"),
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		Env:      getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
