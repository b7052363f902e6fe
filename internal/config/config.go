// ABOUTME: Centralized configuration for the portfolio chat system
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the portfolio system
type Config struct {
	// OpenAI settings
	OpenAIKey       string
	ChatModel       string
	EmbeddingModel  string
	VectorDimension int
	OpenAITimeout   time.Duration

	// Pinecone settings
	PineconeHost   string
	PineconeAPIKey string

	// Charm settings (local/self-hosted vector persistence)
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// Profile data
	ProfilePath string

	// HTTP server settings
	ServerAddr  string
	AllowOrigin string

	// Diagnostics
	IncludeDebug bool
}

// Load reads configuration from environment variables. The profile path has
// no default search list; exactly one path is consulted.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("PORTFOLIO_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:  getEnv("PORTFOLIO_EMBEDDING_MODEL", "text-embedding-3-small"),
		VectorDimension: getEnvInt("PORTFOLIO_VECTOR_DIMENSION", 512),
		OpenAITimeout:   getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		PineconeHost:    os.Getenv("PINECONE_HOST"),
		PineconeAPIKey:  os.Getenv("PINECONE_API_KEY"),
		CharmHost:       getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:     getEnv("CHARM_DB", "portfolio"),
		AutoSync:        getEnvBool("CHARM_AUTO_SYNC", true),
		ProfilePath:     getEnv("PORTFOLIO_DATA", "data/portfolio.json"),
		ServerAddr:      getEnv("PORTFOLIO_ADDR", ":8000"),
		AllowOrigin:     getEnv("PORTFOLIO_ALLOW_ORIGIN", "http://localhost:3000"),
		IncludeDebug:    getEnvBool("PORTFOLIO_DEBUG", false),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.VectorDimension <= 0 {
		return fmt.Errorf("PORTFOLIO_VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.ProfilePath == "" {
		return fmt.Errorf("PORTFOLIO_DATA must not be empty")
	}
	return nil
}

// RequireOpenAI returns an error when the OpenAI key is missing. Commands
// that embed or generate call this; purely local ones don't.
func (c *Config) RequireOpenAI() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

// RequirePinecone returns an error unless both Pinecone settings are present
func (c *Config) RequirePinecone() error {
	if c.PineconeHost == "" || c.PineconeAPIKey == "" {
		return fmt.Errorf("PINECONE_HOST and PINECONE_API_KEY are required")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
