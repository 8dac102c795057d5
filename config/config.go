package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string
	DBPath   string
	DemoMode string
	Serve    bool
	Workers  int
}

var AppConfig *Config

var demoModes = map[string]bool{
	"all":       true,
	"basic":     true,
	"task":      true,
	"coroutine": true,
	"none":      true,
}

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:     GetEnv("PORT", "3000"),
		Env:      GetEnv("ENV", "development"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		DBPath:   GetEnv("DB_PATH", "./data/database-name.db"),
		DemoMode: strings.ToLower(GetEnv("DEMO_MODE", "all")),
		Serve:    GetEnvBool("SERVE", true),
		Workers:  GetEnvInt("WORKERS", 2),
	}

	if !demoModes[AppConfig.DemoMode] {
		log.Fatalf("DEMO_MODE must be one of all, basic, task, coroutine, none (got %q)", AppConfig.DemoMode)
	}
	if AppConfig.Workers < 1 {
		log.Fatal("WORKERS must be at least 1")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool parses a boolean variable, falling back to defaultValue when unset or malformed
func GetEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(GetEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetEnvInt parses an integer variable, falling back to defaultValue when unset or malformed
func GetEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(GetEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
