package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level      string
	Pretty     bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Port int
}

// AWSConfig holds AWS connectivity for DynamoDB and S3.
type AWSConfig struct {
	Region           string
	DynamoDBEndpoint string
	S3Endpoint       string
	DocumentsBucket  string
}

// QueueConfig defines print-queue connectivity and names.
type QueueConfig struct {
	RedisURL     string
	Stream       string
	Group        string
	Consumer     string
	PollInterval time.Duration
}

// RazorpayConfig holds payment gateway credentials.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	Mock      bool
}

// PricingConfig controls how pricing snapshots are fetched.
type PricingConfig struct {
	FetchTimeout time.Duration
}

// SeedConfig holds the values required by the startup seed.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Config is the top-level configuration.
type Config struct {
	HTTP     HTTPConfig
	Logging  LoggingConfig
	AWS      AWSConfig
	Queue    QueueConfig
	Razorpay RazorpayConfig
	Pricing  PricingConfig
	Seed     SeedConfig
}

// FromEnv loads configuration from environment with sensible defaults.
func FromEnv() Config {
	return Config{
		HTTP: HTTPConfig{
			Port: getInt("HTTP_PORT", 8080),
		},
		Logging: LoggingConfig{
			Level:      getStr("LOG_LEVEL", "info"),
			Pretty:     getBool("LOG_PRETTY", false),
			File:       getStr("LOG_FILE", ""),
			MaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 14),
			Compress:   getBool("LOG_COMPRESS", true),
		},
		AWS: AWSConfig{
			Region:           getStr("AWS_REGION", "ap-south-1"),
			DynamoDBEndpoint: getStr("DYNAMODB_ENDPOINT", ""),
			S3Endpoint:       getStr("S3_ENDPOINT", ""),
			DocumentsBucket:  getStr("DOCUMENTS_BUCKET", "eprinter-documents"),
		},
		Queue: QueueConfig{
			RedisURL:     getStr("REDIS_URL", "redis://localhost:6379/0"),
			Stream:       getStr("PRINT_QUEUE_STREAM", "print:jobs"),
			Group:        getStr("PRINT_QUEUE_GROUP", "print-station"),
			Consumer:     getStr("PRINT_QUEUE_CONSUMER", "station-1"),
			PollInterval: getDur("PRINT_QUEUE_POLL_INTERVAL", 2*time.Second),
		},
		Razorpay: RazorpayConfig{
			KeyID:     getStr("RAZORPAY_KEY_ID", ""),
			KeySecret: getStr("RAZORPAY_KEY_SECRET", ""),
			Mock:      getBool("RAZORPAY_MOCK", false),
		},
		Pricing: PricingConfig{
			FetchTimeout: getDur("PRICING_FETCH_TIMEOUT", 2*time.Second),
		},
		Seed: SeedConfig{
			AdminEmail:    getStr("ADMIN_EMAIL", "admin@eprinter.local"),
			AdminPassword: getStr("ADMIN_PASSWORD", ""),
		},
	}
}

func getStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getDur(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
