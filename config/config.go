package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from the environment, reading a local
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file found, using process environment")
	}

	return &Config{
		MongoURI: getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "cinema-go-db"),
		Port:     getEnvOrDefault("PORT", "8080"),
		Env:      getEnvOrDefault("GO_ENV", "development"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
