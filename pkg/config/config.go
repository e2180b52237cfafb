// Package config provides centralized configuration management for the memegen MCP server.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// HTTP listener configuration
	Server struct {
		Host string
		Port int
	}

	// Bearer gate configuration
	Auth struct {
		Token       string
		OwnerNumber string
	}

	// Upstream meme API configuration
	Meme struct {
		BaseURL string
		Timeout time.Duration
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from environment variables.
// A .env file in the working directory is honored when present.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()

		// Set default values
		v.SetDefault("host", "0.0.0.0")
		v.SetDefault("port", 8086)
		v.SetDefault("meme_api_url", "https://memegen-lb2x.onrender.com")
		v.SetDefault("meme_timeout", "60s")

		// Load from environment variables
		v.AutomaticEnv()

		// Map environment variables to config structure
		config = &Config{}

		// Listener
		config.Server.Host = v.GetString("host")
		config.Server.Port = v.GetInt("port")

		// Bearer gate
		config.Auth.Token = v.GetString("auth_token")
		config.Auth.OwnerNumber = v.GetString("my_number")

		// Upstream meme API
		config.Meme.BaseURL = v.GetString("meme_api_url")
		config.Meme.Timeout = v.GetDuration("meme_timeout")
	})

	return config
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	// List of validation errors
	var errors []string

	if c.Auth.Token == "" {
		errors = append(errors, "AUTH_TOKEN must be set")
	}

	if c.Auth.OwnerNumber == "" {
		errors = append(errors, "MY_NUMBER must be set")
	}

	if c.Meme.BaseURL == "" {
		errors = append(errors, "MEME_API_URL must not be empty")
	}

	if c.Meme.Timeout <= 0 {
		errors = append(errors, "MEME_TIMEOUT must be a positive duration")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be a valid TCP port")
	}

	// If any errors were found, return them as a combined error
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
