package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, resolved once at startup.
type Config struct {
	Port        string
	Env         string
	PostgresURL string
	MongoURI    string
	UploadDir   string
	JWTSecret   string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:    getEnv("MONGO_URI", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
