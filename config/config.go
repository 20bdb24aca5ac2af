package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string
	Location  string

	// Gemini Model
	GeminiModel string

	// RapidAPI (JSearch job listings)
	RapidAPIKey  string
	RapidAPIHost string

	// Nominatim geocoding
	NominatimBaseURL    string
	GeocodeDelaySeconds int

	// Server
	Port  string
	Debug bool

	// Timeouts and limits
	HTTPTimeoutSeconds int
	UploadDir          string
	MaxUploadMB        int64

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", ""),

		// Gemini Model
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// RapidAPI
		RapidAPIKey:  getEnv("RAPIDAPI_KEY", ""),
		RapidAPIHost: getEnv("RAPIDAPI_HOST", "jsearch.p.rapidapi.com"),

		// Nominatim free tier allows 1 request per second
		NominatimBaseURL:    getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeDelaySeconds: getEnvInt("GEOCODE_DELAY_SECONDS", 1),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Timeouts and limits
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:        int64(getEnvInt("MAX_UPLOAD_MB", 10)),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// ProjectID is required for Vertex AI and Firestore
	if c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Vertex AI and Firestore"}
	}

	// RapidAPI key is required for job search
	if c.RapidAPIKey == "" {
		return &ConfigError{Field: "RAPIDAPI_KEY", Message: "RAPIDAPI_KEY is required for job search"}
	}

	return nil
}

// MaxUploadBytes returns the upload size cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
