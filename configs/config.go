package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of key from the environment, loading .env first.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
	return os.Getenv(key)
}

type AppConfig struct {
	Port           string
	DBDriver       string
	DatabaseURL    string
	StaticDir      string
	LogMode        string
	ConsumeWorkers int
	ExpiryCron     string
	CORSOrigins    string
}

func Load() AppConfig {
	return AppConfig{
		Port:           withDefault("PORT", "3000"),
		DBDriver:       strings.ToLower(withDefault("DB_DRIVER", "sqlite")),
		DatabaseURL:    withDefault("DATABASE_URL", "students.db"),
		StaticDir:      withDefault("STATIC_DIR", "./frontend"),
		LogMode:        withDefault("LOG_MODE", "dev"),
		ConsumeWorkers: intWithDefault("CONSUME_WORKERS", 8),
		ExpiryCron:     withDefault("EXPIRY_CRON", "0 6 * * *"),
		CORSOrigins:    withDefault("CORS_ORIGINS", "*"),
	}
}

func withDefault(key, def string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return def
}

func intWithDefault(key string, def int) int {
	raw := strings.TrimSpace(Config(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}
