// Package server exposes stored share payloads over a small HTTP API.
package server

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config describes the share server.
type Config struct {
	Addr   string
	DBPath string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	addr := port
	if !strings.Contains(port, ":") {
		if strings.Contains(port, " ") {
			return Config{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		addr = ":" + port
	}

	dbPath := strings.TrimSpace(os.Getenv("WRAPPED_DB"))
	if dbPath == "" {
		dbPath = "wrapped.db"
	}

	return Config{Addr: addr, DBPath: dbPath}, nil
}
