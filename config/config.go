package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Auth    AuthConfig    `yaml:"auth"`
	Booking BookingConfig `yaml:"booking"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

// AuthConfig carries the fixed demo credentials. They are a protocol
// contract for the demo, not secrets.
type AuthConfig struct {
	DemoPhoneNumber string `yaml:"demo_phone_number"`
	DemoOtpCode     string `yaml:"demo_otp_code"`
	LoginLatencyMs  int    `yaml:"login_latency_ms"`
	VerifyLatencyMs int    `yaml:"verify_latency_ms"`
}

func (a AuthConfig) LoginLatency() time.Duration {
	return time.Duration(a.LoginLatencyMs) * time.Millisecond
}

func (a AuthConfig) VerifyLatency() time.Duration {
	return time.Duration(a.VerifyLatencyMs) * time.Millisecond
}

type BookingConfig struct {
	SubmitLatencyMs int    `yaml:"submit_latency_ms"`
	StorageKey      string `yaml:"storage_key"`
}

func (b BookingConfig) SubmitLatency() time.Duration {
	return time.Duration(b.SubmitLatencyMs) * time.Millisecond
}

type CatalogConfig struct {
	Source   string         `yaml:"source"` // "file" or "postgres"
	FilePath string         `yaml:"file_path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Auth.DemoPhoneNumber == "" {
		c.Auth.DemoPhoneNumber = "9898989898"
	}
	if c.Auth.DemoOtpCode == "" {
		c.Auth.DemoOtpCode = "1234"
	}
	if c.Auth.LoginLatencyMs == 0 {
		c.Auth.LoginLatencyMs = 300
	}
	if c.Auth.VerifyLatencyMs == 0 {
		c.Auth.VerifyLatencyMs = 300
	}
	if c.Booking.SubmitLatencyMs == 0 {
		c.Booking.SubmitLatencyMs = 500
	}
	if c.Booking.StorageKey == "" {
		c.Booking.StorageKey = "bookings"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "file"
	}
	if c.Catalog.FilePath == "" {
		c.Catalog.FilePath = "data/flights.json"
	}
}
