package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"todolist/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig

	// Edge
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StoreConfig struct {
	Driver model.StoreDriver
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
	Migrate  bool
}

// RedisConfig enables the snapshot cache when Addr is set.
// URL (redis:// or rediss://) overrides Addr, Password and DB.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	URL      string
	TTL      time.Duration
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// An optional .env file is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, . and /etc/todolist/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/todolist/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = v.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = v.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Store.Driver = model.StoreDriver(strings.ToLower(v.GetString("store.driver")))

	cfg.Postgres.DSN = expandEnvVar(v, v.GetString("postgres.dsn"))
	if dbURL := v.GetString("database_url"); dbURL != "" {
		cfg.Postgres.DSN = dbURL
	}
	cfg.Postgres.MaxConns = v.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = v.GetInt32("postgres.min_conns")
	cfg.Postgres.Migrate = v.GetBool("postgres.migrate")

	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.URL = v.GetString("redis.url")
	if redisURL := v.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	cfg.Redis.TTL = v.GetDuration("redis.ttl")
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(strings.TrimSpace(cfg.Redis.URL))
		if err != nil {
			return nil, fmt.Errorf("redis.url: %w", err)
		}
		cfg.Redis.Addr = opt.Addr
		cfg.Redis.Password = opt.Password
		cfg.Redis.DB = opt.DB
	}

	// Edge
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if !model.Environment(cfg.Environment.Name).IsValid() {
		return fmt.Errorf("environment.name: unknown environment %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port: %d out of range", cfg.HTTPServer.Port)
	}
	if !cfg.Store.Driver.IsValid() {
		return fmt.Errorf("store.driver: unknown driver %q", cfg.Store.Driver)
	}
	if cfg.Store.Driver == model.StoreDriverPostgres && cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required when store.driver is postgres")
	}
	if cfg.Redis.Enabled() && cfg.Store.Driver != model.StoreDriverPostgres {
		return errors.New("redis cache requires store.driver postgres")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return errors.New("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "10s")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("store.driver", string(model.StoreDriverMemory))
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.migrate", true)
	v.SetDefault("redis.ttl", "30s")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_min", 600)
}

// expandEnvVar expands values written as ${VAR_NAME} from viper or the environment.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
