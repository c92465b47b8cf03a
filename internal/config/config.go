package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"

	LockModeNone  = "none"
	LockModeLocal = "local"
	LockModeRedis = "redis"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Lock     LockConfig     `mapstructure:"lock"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type DynamoDBConfig struct {
	Region                  string `mapstructure:"region"`
	AccessKeyID             string `mapstructure:"access_key_id"`
	SecretAccessKey         string `mapstructure:"secret_access_key"`
	Endpoint                string `mapstructure:"endpoint"`
	VendorsTable            string `mapstructure:"vendors_table"`
	PurchaseOrdersTable     string `mapstructure:"purchase_orders_table"`
	PerformanceHistoryTable string `mapstructure:"performance_history_table"`
}

type LockConfig struct {
	Mode string        `mapstructure:"mode"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MetricsConfig struct {
	// ResponseTimeScope is "global" or "vendor".
	ResponseTimeScope string `mapstructure:"response_time_scope"`
}

// Load reads configuration from an optional config.yaml and the environment.
// Environment variables always win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("store.driver", StoreDriverDynamoDB)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.vendors_table", "vendors")
	v.SetDefault("dynamodb.purchase_orders_table", "purchase_orders")
	v.SetDefault("dynamodb.performance_history_table", "vendor_performance_history")

	v.SetDefault("lock.mode", LockModeNone)
	v.SetDefault("lock.ttl", 5*time.Second)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("metrics.response_time_scope", "global")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("server.mode", "GIN_MODE")

	// Log
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")

	// Store
	_ = v.BindEnv("store.driver", "STORE_DRIVER")

	// DynamoDB
	_ = v.BindEnv("dynamodb.region", "AWS_REGION")
	_ = v.BindEnv("dynamodb.access_key_id", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.vendors_table", "VENDORS_TABLE")
	_ = v.BindEnv("dynamodb.purchase_orders_table", "PURCHASE_ORDERS_TABLE")
	_ = v.BindEnv("dynamodb.performance_history_table", "PERFORMANCE_HISTORY_TABLE")

	// Lock
	_ = v.BindEnv("lock.mode", "VENDOR_LOCK_MODE")
	_ = v.BindEnv("lock.ttl", "VENDOR_LOCK_TTL")

	// Redis
	_ = v.BindEnv("redis.address", "REDIS_ADDRESS")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")

	// Metrics
	_ = v.BindEnv("metrics.response_time_scope", "RESPONSE_TIME_SCOPE")
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Lock.Mode {
	case LockModeNone, LockModeLocal, LockModeRedis:
	default:
		return fmt.Errorf("invalid VENDOR_LOCK_MODE %q", c.Lock.Mode)
	}
	switch c.Metrics.ResponseTimeScope {
	case "global", "vendor":
	default:
		return fmt.Errorf("invalid RESPONSE_TIME_SCOPE %q", c.Metrics.ResponseTimeScope)
	}
	if c.Lock.Mode == LockModeRedis && c.Lock.TTL <= 0 {
		return fmt.Errorf("VENDOR_LOCK_TTL must be positive, got %s", c.Lock.TTL)
	}
	return nil
}
