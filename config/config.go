package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

// IsConfigured returns true if all required Anthropic configuration is present
func (c AnthropicConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type ApifyConfig struct {
	APIToken   string
	ActorID    string
	LiAtCookie string
}

// IsConfigured returns true if all required Apify configuration is present
func (c ApifyConfig) IsConfigured() bool {
	return c.APIToken != ""
	// Note: ActorID has a default and LiAtCookie is optional
}

type AppConfig struct {
	// Core configuration
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string

	// Conversation bounds
	MaxHistoryPairs int // Most recent user/assistant pairs kept per LLM call

	// Collaborator configurations (grouped)
	AnthropicConfig AnthropicConfig
	ApifyConfig     ApifyConfig
}

// LoadConfig reads configuration from the environment. Missing collaborator
// credentials are a startup failure: every per-request path degrades to text,
// so this is the only place the process is allowed to abort.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	anthropicAPIKey, err := getEnvRequired("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}

	apifyAPIToken, err := getEnvRequired("APIFY_API_TOKEN")
	if err != nil {
		return nil, err
	}

	maxTokens, err := getEnvInt64WithDefault("ANTHROPIC_MAX_TOKENS", 1024)
	if err != nil {
		return nil, err
	}

	maxHistoryPairs, err := getEnvIntWithDefault("MAX_HISTORY_PAIRS", 10)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		MaxHistoryPairs:    maxHistoryPairs,

		AnthropicConfig: AnthropicConfig{
			APIKey:    anthropicAPIKey,
			Model:     getEnvWithDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
			MaxTokens: maxTokens,
		},

		ApifyConfig: ApifyConfig{
			APIToken:   apifyAPIToken,
			ActorID:    getEnvWithDefault("APIFY_ACTOR_ID", "pratikdani~linkedin-people-profile-scraper"),
			LiAtCookie: os.Getenv("LI_AT_COOKIE"),
		},
	}

	if config.AnthropicConfig.IsConfigured() {
		log.Printf("✅ Anthropic LLM gateway configured (model: %s)", config.AnthropicConfig.Model)
	}

	if config.ApifyConfig.IsConfigured() {
		log.Printf("✅ Apify profile scraper configured (actor: %s)", config.ApifyConfig.ActorID)
	}
	if config.ApifyConfig.LiAtCookie == "" {
		log.Printf("⚠️ LI_AT_COOKIE not set - scraping may fail for profiles requiring authentication")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt64WithDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
