package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Appointment request shapes understood by the API client.
const (
	AppointmentsStyleQuery = "query"
	AppointmentsStylePath  = "path"
)

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Sandbox SandboxConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type APIConfig struct {
	BaseURL           string
	Timeout           time.Duration
	AppointmentsStyle string
}

type SessionConfig struct {
	Store     string
	Namespace string
	Token     string
	Role      string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SandboxConfig struct {
	Port          string
	AdminUsername string
	AdminPassword string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("APPOINTMENTS_STYLE", AppointmentsStyleQuery)
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_NAMESPACE", "default")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SANDBOX_PORT", "8080")
	v.SetDefault("SANDBOX_ADMIN_USERNAME", "admin")
	v.SetDefault("SANDBOX_ADMIN_PASSWORD", "admin123")
	v.SetDefault("JWT_SECRET", "sandbox-secret")

	// .env is optional, the environment alone is enough
	_ = v.ReadInConfig()

	timeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil || accessExpiry <= 0 {
		accessExpiry = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		API: APIConfig{
			BaseURL:           v.GetString("API_BASE_URL"),
			Timeout:           timeout,
			AppointmentsStyle: v.GetString("APPOINTMENTS_STYLE"),
		},
		Session: SessionConfig{
			Store:     v.GetString("SESSION_STORE"),
			Namespace: v.GetString("SESSION_NAMESPACE"),
			Token:     v.GetString("SESSION_TOKEN"),
			Role:      v.GetString("SESSION_ROLE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Sandbox: SandboxConfig{
			Port:          v.GetString("SANDBOX_PORT"),
			AdminUsername: v.GetString("SANDBOX_ADMIN_USERNAME"),
			AdminPassword: v.GetString("SANDBOX_ADMIN_PASSWORD"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.API.AppointmentsStyle {
	case AppointmentsStyleQuery, AppointmentsStylePath:
	default:
		return fmt.Errorf("invalid APPOINTMENTS_STYLE %q", c.API.AppointmentsStyle)
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("invalid SESSION_STORE %q", c.Session.Store)
	}

	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	return nil
}
