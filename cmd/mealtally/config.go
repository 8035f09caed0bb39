package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/mealtally/internal/db"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultDatabaseURL   = "data/mealtally.db"
	defaultPort          = "3000"
	defaultAllowOrigins  = "https://elainediet.zeabur.app"
	defaultHostingDomain = "zeabur.app"
)

type config struct {
	DatabaseURL   string
	Port          string
	AllowOrigins  []string
	HostingDomain string
	DBLogLevel    gormlogger.LogLevel
}

func loadConfig() (config, error) {
	loadDotEnv(".env")

	port, err := resolvePort()
	if err != nil {
		return config{}, err
	}

	return config{
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		Port:          port,
		AllowOrigins:  splitOrigins(getEnv("CORS_ALLOW_ORIGINS", defaultAllowOrigins)),
		HostingDomain: getEnv("CORS_HOSTING_DOMAIN", defaultHostingDomain),
		DBLogLevel:    db.ParseLogLevel(getEnv("DB_LOG_LEVEL", "warn")),
	}, nil
}

// loadDotEnv never overrides variables already set in the environment.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring %s: %v", path, err)
	}
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", defaultPort)
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func splitOrigins(raw string) []string {
	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
