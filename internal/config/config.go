package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	APIKey    string          `json:"api_key,omitempty"`
	Notify    NotifyConfig    `json:"notify"`
	Monitor   MonitorConfig   `json:"monitor"`
	Lifecycle LifecycleConfig `json:"lifecycle"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type NotifyConfig struct {
	GatewayURL string `json:"gateway_url"`
	Disabled   bool   `json:"disabled"`
}

type MonitorConfig struct {
	Cooldown        time.Duration `json:"cooldown"`
	DefaultRadiusKm float64       `json:"default_radius_km"`
	VibeRadiusKm    float64       `json:"vibe_radius_km"`
}

type LifecycleConfig struct {
	SweepInterval time.Duration `json:"sweep_interval"`
	MaxReportAge  time.Duration `json:"max_report_age"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "hyperapp_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Notify: NotifyConfig{
			GatewayURL: getEnv("NOTIFY_GATEWAY_URL", "http://push-gateway:9100/send"),
			Disabled:   getEnvBool("NOTIFY_DISABLED", false),
		},
		Monitor: MonitorConfig{
			Cooldown:        getEnvDuration("MONITOR_COOLDOWN", 60*time.Second),
			DefaultRadiusKm: getEnvFloat("MONITOR_DEFAULT_RADIUS_KM", 10.0),
			VibeRadiusKm:    getEnvFloat("MONITOR_VIBE_RADIUS_KM", 0.5),
		},
		Lifecycle: LifecycleConfig{
			SweepInterval: getEnvDuration("LIFECYCLE_SWEEP_INTERVAL", 1*time.Hour),
			MaxReportAge:  getEnvDuration("LIFECYCLE_MAX_REPORT_AGE", 12*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Duration("monitor_cooldown", cfg.Monitor.Cooldown))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Monitor.Cooldown <= 0 {
		return errors.New("MONITOR_COOLDOWN must be positive")
	}
	if c.Monitor.VibeRadiusKm <= 0 || c.Monitor.DefaultRadiusKm <= 0 {
		return errors.New("monitor radii must be positive")
	}
	if c.Lifecycle.SweepInterval <= 0 || c.Lifecycle.MaxReportAge <= 0 {
		return errors.New("lifecycle intervals must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
