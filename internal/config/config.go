package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	Port string
	Env  string

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret string
	JWTTTL    int // JWT token expiration time in hours

	// File upload Configuration
	UploadDir string
	BaseURL   string
}

// Load reads the configuration from environment variables, falling back to
// a .env file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("GO_ENV", "development"),
		MongoURI:  getEnv("MONGO_URI", ""),
		DBName:    getEnv("DB_NAME", "moviehubdb"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvInt("JWT_TTL_HOURS", 24),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:   getEnv("BASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
