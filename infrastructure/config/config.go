package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAdminSecret is the session token used when ADMIN_SECRET is unset.
// Production refuses to start with it.
const DefaultAdminSecret = "change-me-in-production"

// Store backends
const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`
	LogLevel      string `yaml:"log_level"`
	MaxBodyBytes  int64  `yaml:"max_body_bytes"`

	// Content storage
	StoreBackend    string `yaml:"store_backend"`
	ContentFile     string `yaml:"content_file"`
	ContentKey      string `yaml:"content_key"`
	WatchContent    bool   `yaml:"watch_content"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`

	// Uploads
	UploadDir       string `yaml:"upload_dir"`
	UploadURLPrefix string `yaml:"upload_url_prefix"`
	MaxUploadBytes  int64  `yaml:"max_upload_bytes"`

	// AWS configuration
	AWSRegion     string `yaml:"aws_region"`
	DynamoDBTable string `yaml:"dynamodb_table"`
	EventBusName  string `yaml:"event_bus_name"`
	EventSource   string `yaml:"event_source"`

	// Lambda configuration
	IsLambda bool `yaml:"-"`

	// Authentication
	AdminPassword   string        `yaml:"-"`
	AdminSecret     string        `yaml:"-"`
	SessionMaxAge   time.Duration `yaml:"session_max_age"`
	LoginsPerMinute int           `yaml:"logins_per_minute"`

	// Resilience
	BreakerMaxFailures int           `yaml:"breaker_max_failures"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout"`

	// Feature flags
	EnableMetrics   bool     `yaml:"enable_metrics"`
	EnableTracing   bool     `yaml:"enable_tracing"`
	OTELEndpoint    string   `yaml:"otel_endpoint"`
	TraceSampleRate float64  `yaml:"trace_sample_rate"`
	EnableCORS      bool     `yaml:"enable_cors"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

// Defaults returns the configuration used before any file or environment
// variable is applied.
func Defaults() *Config {
	return &Config{
		ServerAddress:   ":8080",
		Environment:     "development",
		LogLevel:        "info",
		MaxBodyBytes:    5 << 20,
		StoreBackend:    BackendFile,
		ContentFile:     "data/content.json",
		ContentKey:      "default",
		CacheTTLSeconds: 300,
		UploadDir:       "public/uploads",
		UploadURLPrefix: "/uploads",
		MaxUploadBytes:  10 << 20,
		AWSRegion:       "us-east-1",
		EventSource:     "portfolio.content",
		AdminSecret:     DefaultAdminSecret,
		SessionMaxAge:   7 * 24 * time.Hour,
		LoginsPerMinute: 10,

		BreakerMaxFailures: 5,
		BreakerOpenTimeout: 30 * time.Second,

		OTELEndpoint:    "localhost:4317",
		TraceSampleRate: 0.1,
		EnableCORS:      true,
		AllowedOrigins:  []string{"*"},
	}
}

// LoadConfig loads configuration from defaults, the optional CONFIG_FILE
// overlay and environment variables, in that order of precedence.
func LoadConfig() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := NewLoader().LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvironment(cfg)

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvironment(cfg *Config) {
	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MaxBodyBytes = getEnvInt64("MAX_BODY_BYTES", cfg.MaxBodyBytes)

	cfg.StoreBackend = strings.ToLower(getEnv("STORE_BACKEND", cfg.StoreBackend))
	cfg.ContentFile = getEnv("CONTENT_FILE", cfg.ContentFile)
	cfg.ContentKey = getEnv("CONTENT_KEY", cfg.ContentKey)
	cfg.WatchContent = getEnvBool("WATCH_CONTENT", cfg.WatchContent)
	cfg.CacheTTLSeconds = getEnvInt("CACHE_TTL_SECONDS", cfg.CacheTTLSeconds)

	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.UploadURLPrefix = strings.TrimRight(getEnv("UPLOAD_URL_PREFIX", cfg.UploadURLPrefix), "/")
	cfg.MaxUploadBytes = getEnvInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.DynamoDBTable = getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", cfg.DynamoDBTable))
	cfg.EventBusName = getEnv("EVENT_BUS_NAME", cfg.EventBusName)
	cfg.EventSource = getEnv("EVENT_SOURCE", cfg.EventSource)

	cfg.IsLambda = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""

	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.AdminSecret = getEnv("ADMIN_SECRET", cfg.AdminSecret)
	cfg.SessionMaxAge = time.Duration(getEnvInt("SESSION_MAX_AGE", int(cfg.SessionMaxAge.Seconds()))) * time.Second
	cfg.LoginsPerMinute = getEnvInt("LOGIN_RATE_LIMIT", cfg.LoginsPerMinute)

	cfg.BreakerMaxFailures = getEnvInt("BREAKER_MAX_FAILURES", cfg.BreakerMaxFailures)

	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)
	cfg.EnableTracing = getEnvBool("ENABLE_TRACING", cfg.EnableTracing)
	cfg.OTELEndpoint = getEnv("OTEL_ENDPOINT", cfg.OTELEndpoint)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFile:
		if c.ContentFile == "" {
			return fmt.Errorf("CONTENT_FILE is required for the file backend")
		}
	case BackendDynamoDB:
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required for the dynamodb backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.MaxUploadBytes <= 0 || c.MaxBodyBytes <= 0 {
		return fmt.Errorf("request size limits must be positive")
	}

	if c.Environment == "production" {
		if c.AdminSecret == "" || c.AdminSecret == DefaultAdminSecret {
			return fmt.Errorf("ADMIN_SECRET must be set in production")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
