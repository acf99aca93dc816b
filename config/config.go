package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const placeholderSecret = "your-secret-key-change-this-in-prod"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
	Forecast ForecastConfig `yaml:"forecast"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	AppEnv          string        `yaml:"app_env"`
	HTTPPort        string        `yaml:"http_port"`
	GRPCPort        string        `yaml:"grpc_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggerConfig struct {
	Level             string `yaml:"level"`
	Encoding          string `yaml:"encoding"`
	DisableCaller     bool   `yaml:"disable_caller"`
	DisableStacktrace bool   `yaml:"disable_stacktrace"`
}

type DatabaseConfig struct {
	Driver     string         `yaml:"driver"` // postgres or sqlite
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"db_name"`
	SSLMode         string `yaml:"ssl_mode"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime int    `yaml:"conn_max_idle_time"`
}

type JWTConfig struct {
	SecretKey     string `yaml:"secret_key"`
	ExpireMinutes int    `yaml:"expire_minutes"`
}

// AuthConfig holds the single operator credential. PasswordHash wins over
// Password when both are set.
type AuthConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

type ForecastConfig struct {
	DefaultDaysThreshold int `yaml:"default_days_threshold"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "development"),
			HTTPPort:        getEnv("HTTP_PORT", ":8000"),
			GRPCPort:        getEnv("GRPC_PORT", ""),
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("SQLITE_PATH", "duka.db"),
			Postgres: PostgresConfig{
				Host:            getEnv("POSTGRES_HOST", "localhost"),
				Port:            getEnv("POSTGRES_PORT", "5432"),
				User:            getEnv("POSTGRES_USER", "duka"),
				Password:        getEnv("POSTGRES_PASSWORD", "duka"),
				DBName:          getEnv("POSTGRES_DB", "duka"),
				SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
				MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
				MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
				ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
			},
		},
		JWT: JWTConfig{
			SecretKey:     getEnv("JWT_SECRET_KEY", placeholderSecret),
			ExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 30),
		},
		Auth: AuthConfig{
			Username:     getEnv("AUTH_USERNAME", "admin"),
			Password:     getEnv("AUTH_PASSWORD", ""),
			PasswordHash: getEnv("AUTH_PASSWORD_HASH", ""),
		},
		Forecast: ForecastConfig{
			DefaultDaysThreshold: getEnvInt("FORECAST_DAYS_THRESHOLD", 3),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000", "http://localhost:8501"}),
		},
	}
}

// Load reads the environment and, when path is non-empty, overlays the YAML
// file at path. Keys present in the file take precedence over the environment.
func Load(path string) (*Config, error) {
	cfg := LoadEnv()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.AppEnv == "dev"
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Postgres.Host == "" || c.Database.Postgres.DBName == "" {
			return errors.New("postgres host and db name are required")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return errors.New("sqlite_path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Auth.Username == "" {
		return errors.New("auth username is required")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return errors.New("AUTH_PASSWORD or AUTH_PASSWORD_HASH must be set")
	}
	if c.JWT.SecretKey == "" {
		return errors.New("jwt secret key is required")
	}
	if c.Server.AppEnv == "production" && c.JWT.SecretKey == placeholderSecret {
		return errors.New("JWT_SECRET_KEY must be changed in production")
	}
	if c.JWT.ExpireMinutes <= 0 {
		return errors.New("jwt expire minutes must be positive")
	}
	if c.Forecast.DefaultDaysThreshold < 0 {
		return errors.New("forecast days threshold must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
