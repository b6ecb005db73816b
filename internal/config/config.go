package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"moyudiary/internal/domain/comment"
	"moyudiary/internal/domain/store"
	"moyudiary/internal/domain/ticker"
	"moyudiary/internal/infrastructure/gemini"
	"moyudiary/internal/infrastructure/storage"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env     string
	Server  server
	Storage db
	Logger  logger
	Comment commentConfig
	Ticker  tickerConfig
}

type server struct {
	RunAddress      string
	ShutdownTimeout time.Duration
}

type db struct {
	Driver      string
	DataPath    string
	DatabaseURI string
	KeyPrefix   string
}

type logger struct {
	LogLevel string
}

type commentConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type tickerConfig struct {
	Interval time.Duration
}

// Load читает конфигурацию: .env (если есть), затем файл path (если задан),
// затем переменные окружения. Окружение имеет наивысший приоритет.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(envPath)

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Env: strings.ToLower(v.GetString("app_env")),
		Server: server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Storage: db{
			Driver:      strings.ToLower(v.GetString("storage_driver")),
			DataPath:    v.GetString("data_path"),
			DatabaseURI: v.GetString("database_uri"),
			KeyPrefix:   v.GetString("key_prefix"),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
		Comment: commentConfig{
			APIKey:  v.GetString("gemini_api_key"),
			BaseURL: v.GetString("gemini_base_url"),
			Model:   v.GetString("gemini_model"),
			Timeout: v.GetDuration("comment_timeout"),
		},
		Ticker: tickerConfig{Interval: v.GetDuration("tick_interval")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", "localhost:8080")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("storage_driver", storage.DriverSQLite)
	v.SetDefault("data_path", "data/moyu.db")
	v.SetDefault("database_uri", "")
	v.SetDefault("key_prefix", store.DefaultPrefix)
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_base_url", gemini.DefaultBaseURL)
	v.SetDefault("gemini_model", gemini.DefaultModel)
	v.SetDefault("comment_timeout", comment.DefaultTimeout)
	v.SetDefault("tick_interval", ticker.DefaultInterval)
}

func (c *Config) validate() error {
	var errs []error

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		errs = append(errs, fmt.Errorf("unknown APP_ENV %q", c.Env))
	}

	if c.Server.RunAddress == "" {
		errs = append(errs, errors.New("RUN_ADDRESS is empty"))
	}

	switch c.Storage.Driver {
	case storage.DriverSQLite:
		if c.Storage.DataPath == "" {
			errs = append(errs, errors.New("DATA_PATH is required for sqlite storage"))
		}
	case storage.DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			errs = append(errs, errors.New("DATABASE_URI is required for postgres storage"))
		}
	case storage.DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if c.Comment.Timeout <= 0 {
		errs = append(errs, errors.New("COMMENT_TIMEOUT must be positive"))
	}
	if c.Ticker.Interval <= 0 {
		errs = append(errs, errors.New("TICK_INTERVAL must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
