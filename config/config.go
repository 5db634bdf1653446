package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	Database DatabaseConfig

	// External vitals/heart-disease provider
	Vitals VitalsConfig

	// Speech service (STT/TTS)
	Voice VoiceConfig

	// Conversation engine
	Chat ChatConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	Type     string // "mongodb"
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type VitalsConfig struct {
	BaseURL string
	Timeout time.Duration
}

type VoiceConfig struct {
	BaseURL       string
	Enabled       bool
	ListenTimeout time.Duration
	SpeakTimeout  time.Duration
}

type ChatConfig struct {
	MatchThreshold int
	SessionTTL     time.Duration
}

type SecurityConfig struct {
	AllowedOrigins []string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			Type:     getEnv("DB_TYPE", "mongodb"),
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "medassist_chatbot"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Vitals: VitalsConfig{
			BaseURL: getEnv("VITALS_API_URL", "https://e-react-node-backend-22ed6864d5f3.herokuapp.com"),
			Timeout: getEnvAsDuration("VITALS_API_TIMEOUT", "5s"),
		},

		Voice: VoiceConfig{
			BaseURL:       getEnv("VOICE_SERVICE_URL", "http://localhost:8000"),
			Enabled:       getEnvAsBool("VOICE_ENABLED", false),
			ListenTimeout: getEnvAsDuration("VOICE_LISTEN_TIMEOUT", "5s"),
			SpeakTimeout:  getEnvAsDuration("VOICE_SPEAK_TIMEOUT", "10s"),
		},

		Chat: ChatConfig{
			MatchThreshold: getEnvAsInt("CHAT_MATCH_THRESHOLD", 60),
			SessionTTL:     getEnvAsDuration("CHAT_SESSION_TTL", "1h"),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	// Simple comma-separated parsing
	return strings.Split(value, ",")
}

func validate() error {
	if cfg.Database.Type == "mongodb" && cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	if cfg.Vitals.BaseURL == "" {
		return fmt.Errorf("vitals API base URL is required")
	}

	if cfg.Chat.MatchThreshold < 0 || cfg.Chat.MatchThreshold > 100 {
		return fmt.Errorf("chat match threshold must be in [0,100]")
	}

	return nil
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
