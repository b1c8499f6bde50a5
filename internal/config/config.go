package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds admin authentication configuration
type AuthConfig struct {
	// AdminKeys are shared-secret credentials compared by exact match
	AdminKeys []string `mapstructure:"admin_keys"`
	// JWTSecret signs short-lived admin session tokens (HS256)
	JWTSecret string `mapstructure:"jwt_secret"`
}

// MempoolConfig holds the mempool indexer client configuration
type MempoolConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// RateLimitRPS caps requests per second against the indexer API
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// SaleConfig holds sale engine configuration
type SaleConfig struct {
	// DefaultCooldown applies to batches without a per-batch override
	DefaultCooldown time.Duration `mapstructure:"default_cooldown"`
	// PriorityBuffer is how much a priority tick may narrow the cooldown
	PriorityBuffer time.Duration `mapstructure:"priority_buffer"`
	// OrderTTL is how long a pending order may wait for payment
	OrderTTL time.Duration `mapstructure:"order_ttl"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// PaymentSweeperConfig holds configuration for the payment sweeper
type PaymentSweeperConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
	Worker    WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Mempool    MempoolConfig  `mapstructure:"mempool"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Sale       SaleConfig     `mapstructure:"sale"`
}

// SweeperConfig holds configuration for the sweeper process
type SweeperConfig struct {
	BaseConfig       `mapstructure:",squash"`
	Database         DatabaseConfig       `mapstructure:"database"`
	Mempool          MempoolConfig        `mapstructure:"mempool"`
	NATS             NATSConfig           `mapstructure:"nats"`
	Sale             SaleConfig           `mapstructure:"sale"`
	PaymentSweeper   PaymentSweeperConfig `mapstructure:"payment_sweeper"`
	CooldownInterval time.Duration        `mapstructure:"cooldown_interval"`
	ExpiryInterval   time.Duration        `mapstructure:"expiry_interval"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setCommonDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper process
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("payment_sweeper.interval", "30s")
	v.SetDefault("payment_sweeper.batch_size", 100)
	v.SetDefault("payment_sweeper.worker.pool_size", 10)
	v.SetDefault("payment_sweeper.worker.queue_size", 100)
	v.SetDefault("cooldown_interval", "15s")
	v.SetDefault("expiry_interval", "5m")
	setCommonDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config SweeperConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if config.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &config, nil
}

// setCommonDefaults applies defaults shared by every process
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("mempool.api_url", "https://mempool.space/api")
	v.SetDefault("mempool.http_timeout", "30s")
	v.SetDefault("mempool.rate_limit_rps", 4)
	v.SetDefault("mempool.rate_limit_burst", 8)
	v.SetDefault("nats.stream_name", "SALE_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("sale.default_cooldown", "15m")
	v.SetDefault("sale.priority_buffer", "30s")
	v.SetDefault("sale.order_ttl", "1h")
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MINT_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no
// config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.admin_keys",
		"auth.jwt_secret",
		// Mempool
		"mempool.api_url",
		"mempool.http_timeout",
		"mempool.rate_limit_rps",
		"mempool.rate_limit_burst",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Sale
		"sale.default_cooldown",
		"sale.priority_buffer",
		"sale.order_ttl",
		// Sweeper
		"payment_sweeper.interval",
		"payment_sweeper.batch_size",
		"payment_sweeper.worker.pool_size",
		"payment_sweeper.worker.queue_size",
		"cooldown_interval",
		"expiry_interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}
