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

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize int `mapstructure:"pool_size"`
}

// SyncConfig holds the reconciliation schedule and indexer paging settings
type SyncConfig struct {
	// Interval is the pause between sync cycles
	Interval time.Duration `mapstructure:"interval"`
	// MetadataDomain is the platform host recognized in contract metadata URIs
	MetadataDomain string `mapstructure:"metadata_domain"`
	// PageLimit is the indexer page size
	PageLimit int `mapstructure:"page_limit"`
	// HTTPTimeout bounds each indexer request
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// NetworkConfig holds one network's indexer endpoint and job start blocks
type NetworkConfig struct {
	SubgraphURL           string `mapstructure:"subgraph_url"`
	CreatedContractsStart uint64 `mapstructure:"created_contracts_start"`
	CreatedTokensStart    uint64 `mapstructure:"created_tokens_start"`
	BurnedTokensStart     uint64 `mapstructure:"burned_tokens_start"`
	TransferTokensStart   uint64 `mapstructure:"transfer_tokens_start"`
	// SaleContracts maps each marketplace sale contract to its deploy block
	SaleContracts map[string]uint64 `mapstructure:"sale_contracts"`
}

// SyncWorkerConfig holds configuration for the sync-worker binary
type SyncWorkerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig           `mapstructure:"database"`
	NATS       NATSConfig               `mapstructure:"nats"`
	Worker     WorkerConfig             `mapstructure:"worker"`
	Sync       SyncConfig               `mapstructure:"sync"`
	Networks   map[string]NetworkConfig `mapstructure:"networks"`
}

// LoadSyncWorkerConfig loads configuration for the sync-worker
func LoadSyncWorkerConfig(configFile string, envPath string) (*SyncWorkerConfig, error) {
	v := configureViper("sync-worker", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("nats.connection_name", "sync-worker")
	v.SetDefault("worker.pool_size", 10)
	v.SetDefault("sync.interval", "1m")
	v.SetDefault("sync.page_limit", 1000)
	v.SetDefault("sync.http_timeout", "30s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config SyncWorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

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
	v.SetEnvPrefix("MARKETPLACE_SYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds the keys AutomaticEnv cannot discover on
// its own (viper only sees keys that also appear in the config file)
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
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
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"worker.pool_size",
		"sync.interval",
		"sync.metadata_domain",
		"sync.page_limit",
		"sync.http_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
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
