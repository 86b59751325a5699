package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Mail     MailConfig
	Ingest   IngestConfig
	Scan     ScanConfig
	Redis    RedisConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	TesseractBin     string
	TessdataDir      string
	Languages        string
	ArtifactCacheDir string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Enabled     bool
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// MailConfig holds mailbox scanning configuration
type MailConfig struct {
	SourceFile   string
	BatchSize    int
	BatchPause   time.Duration
	MaxBodyChars int
	MaxMessages  int
}

// IngestConfig holds the screenshot directory watcher configuration
type IngestConfig struct {
	WatchDirs   []string
	Debounce    time.Duration
	InitialScan bool
}

// ScanConfig holds auto-scan scheduling configuration
type ScanConfig struct {
	AutoScanEnabled bool
	ScanInterval    time.Duration
}

// RedisConfig holds the optional seen-message cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	SeenTTL  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			TesseractBin:     getEnv("TESSERACT_BIN", "tesseract"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			Languages:        getEnv("OCR_LANGUAGES", "eng"),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		LLM: LLMConfig{
			Enabled:     getEnvAsBool("LLM_EXTRACTION_ENABLED", false),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Mail: MailConfig{
			SourceFile:   getEnv("MAILBOX_FILE", ""),
			BatchSize:    getEnvAsInt("MAIL_BATCH_SIZE", 10),
			BatchPause:   getEnvAsDuration("MAIL_BATCH_PAUSE", 100*time.Millisecond),
			MaxBodyChars: getEnvAsInt("MAIL_MAX_BODY_CHARS", 3000),
			MaxMessages:  getEnvAsInt("MAIL_MAX_MESSAGES", 200),
		},
		Ingest: IngestConfig{
			WatchDirs:   splitAndTrim(getEnv("WATCH_DIRS", "")),
			Debounce:    getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			InitialScan: getEnvAsBool("WATCH_INITIAL_SCAN", false),
		},
		Scan: ScanConfig{
			AutoScanEnabled: getEnvAsBool("AUTO_SCAN_ENABLED", false),
			ScanInterval:    getEnvAsDuration("SCAN_INTERVAL", 6*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			SeenTTL:  getEnvAsDuration("REDIS_SEEN_TTL", 30*24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.LLM.Enabled && c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required when LLM_EXTRACTION_ENABLED", ErrInvalidInput)
	}
	if c.Mail.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "MAIL_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	if c.Scan.AutoScanEnabled && c.Scan.ScanInterval <= 0 {
		return NewAppError("CONFIG_ERROR", "SCAN_INTERVAL must be positive when AUTO_SCAN_ENABLED", ErrInvalidInput)
	}
	return nil
}
