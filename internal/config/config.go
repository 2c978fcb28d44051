package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Market   MarketConfig
	Broker   BrokerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Host string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds the localstore configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers       []string
	EventTopic    string
	HoldingsTopic string
	GroupID       string
}

// MarketConfig holds the exchange session and upstream source configuration
type MarketConfig struct {
	Timezone     string
	QuoteSources []string
	NewsSources  []string
	ChartBaseURL string
}

// BrokerConfig holds the broker portfolio-sync endpoint
type BrokerConfig struct {
	BaseURL   string
	AuthToken string
}

// Load reads configuration from a local .env file (if present) and the
// environment
func Load() *Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "bharatterminal"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			EventTopic:    getEnv("KAFKA_EVENT_TOPIC", "terminal-events"),
			HoldingsTopic: getEnv("KAFKA_HOLDINGS_TOPIC", "broker-holdings"),
			GroupID:       getEnv("KAFKA_GROUP_ID", "bharat-terminal"),
		},
		Market: MarketConfig{
			Timezone:     getEnv("MARKET_TIMEZONE", "Asia/Kolkata"),
			QuoteSources: splitList(getEnv("QUOTE_SOURCES", "http://localhost:8081")),
			NewsSources:  splitList(getEnv("NEWS_SOURCES", "")),
			ChartBaseURL: getEnv("CHART_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
		},
		Broker: BrokerConfig{
			BaseURL:   getEnv("BROKER_BASE_URL", ""),
			AuthToken: getEnv("BROKER_AUTH_TOKEN", ""),
		},
	}
}

// ConnectionString returns the PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DBName + "?sslmode=" + d.SSLMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
