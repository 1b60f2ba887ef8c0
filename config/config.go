package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultTableName is the Airtable table used when none is configured.
const DefaultTableName = "Pre-Op Checklist"

// Config is the top-level application configuration.
type Config struct {
	SiteID      string `yaml:"site_id"`
	QueuePath   string `yaml:"queue_path"`
	LogLevel    string `yaml:"log_level"`
	Environment string `yaml:"environment"`

	Database     DatabaseConfig     `yaml:"database"`
	Web          WebConfig          `yaml:"web"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
	Alerts       AlertsConfig       `yaml:"alerts"`

	// Airtable credentials come from the environment only, never from the
	// config file (not user-editable at runtime).
	Airtable AirtableConfig `yaml:"-"`
}

// DatabaseConfig selects where the audit log lives. SQLite next to the
// binary is the default; sites with a central database use postgres.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"` // "sqlite" (default) or "postgres"
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig defines the SQLite database file.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// PostgresConfig defines the PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// WebConfig defines the web server settings.
type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ConnectivityConfig defines the one-shot startup reachability probe.
type ConnectivityConfig struct {
	ProbeURL     string        `yaml:"probe_url"`
	ProbeTimeout time.Duration `yaml:"probe_timeout"`
}

// AlertsConfig defines the optional maintenance-alert publisher.
// An empty backend disables alerting.
type AlertsConfig struct {
	Backend string      `yaml:"backend"` // "mqtt", "kafka" or ""
	Topic   string      `yaml:"topic"`
	MQTT    MQTTConfig  `yaml:"mqtt"`
	Kafka   KafkaConfig `yaml:"kafka"`
}

// MQTTConfig defines MQTT broker settings.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	Port     int    `yaml:"port"`
	ClientID string `yaml:"client_id"`
}

// KafkaConfig defines Kafka broker settings.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
}

// AirtableConfig holds the remote service credentials and destination.
type AirtableConfig struct {
	APIKey    string
	BaseID    string
	TableName string
	BaseURL   string
}

// IsConfigured reports whether real submissions are possible. Without both
// a credential and a base id the system runs in demo mode.
func (a AirtableConfig) IsConfigured() bool {
	return a.APIKey != "" && a.BaseID != ""
}

// Defaults returns a Config with sane defaults.
func Defaults() *Config {
	return &Config{
		SiteID:      "site-1",
		QueuePath:   "pending_submissions.json",
		LogLevel:    "info",
		Environment: "development",
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "preopedge.db"},
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				SSLMode: "disable",
			},
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Connectivity: ConnectivityConfig{
			ProbeURL:     "https://api.airtable.com",
			ProbeTimeout: 3 * time.Second,
		},
		Alerts: AlertsConfig{
			Topic: "preop/alerts",
			MQTT: MQTTConfig{
				Broker:   "localhost",
				Port:     1883,
				ClientID: "preopedge",
			},
		},
		Airtable: AirtableConfig{
			TableName: DefaultTableName,
			BaseURL:   "https://api.airtable.com",
		},
	}
}

// Load reads a YAML config file and overlays Airtable settings from the
// environment (a .env file is honored if present). A missing config file
// is not an error; defaults are used.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.loadEnv()
	return cfg, nil
}

func (c *Config) loadEnv() {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	c.Airtable.APIKey = os.Getenv("AIRTABLE_API_KEY")
	c.Airtable.BaseID = os.Getenv("AIRTABLE_BASE_ID")
	if v := os.Getenv("AIRTABLE_TABLE_NAME"); v != "" {
		c.Airtable.TableName = v
	}
	if v := os.Getenv("AIRTABLE_BASE_URL"); v != "" {
		c.Airtable.BaseURL = v
	}
}
