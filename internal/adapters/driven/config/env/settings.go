// Package env loads store connection settings from the process environment,
// first reading a local .env file when one is present.
package env

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// defaultPort is used when REDIS_PORT is unset.
const defaultPort = 6379

// Settings holds the connection parameters for the store.
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Addr returns the host:port address for dialing.
func (s *Settings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first; its absence is not an error. A missing
// REDIS_HOST is a fatal configuration error.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Could not read .env: %v", err)
	}

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil, fmt.Errorf("REDIS_HOST: %w", domain.ErrMissingConfig)
	}

	port := defaultPort
	if p := os.Getenv("REDIS_PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_PORT %q: %w", p, err)
		}
		port = n
	}

	return &Settings{
		Host:     host,
		Port:     port,
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}, nil
}
