package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	SessionSecret     string
	AllowedOrigins    []string
	ReconcileInterval time.Duration
	GinMode           string
}

// Load reads configuration from the environment. A .env file is picked up
// when present so local dev does not need exported variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:       getEnv("MONGODB_NAME", "playlistpulse"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	// RECONCILE_INTERVAL=0 disables the counter reconciler.
	interval := getEnv("RECONCILE_INTERVAL", "10m")
	d, err := time.ParseDuration(interval)
	if err != nil {
		return nil, err
	}
	cfg.ReconcileInterval = d

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
