package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Resource  ResourceConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Database  DatabaseConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type ResourceConfig struct {
	BaseURL string
	Timeout time.Duration
	// Offline forces every operation onto the fallback store without
	// touching the network.
	Offline bool
}

type JWTConfig struct {
	Secret string
}

type RedisConfig struct {
	// Addr empty disables the rate limiter.
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// DatabaseConfig is consumed by the resource server binary only.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

func Load() *Config {
	// .env is optional; deployments configure through the environment.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("RESOURCE_BASE_URL", "http://localhost:3001")
	viper.SetDefault("RESOURCE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("OFFLINE_MODE", false)
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Resource: ResourceConfig{
			BaseURL: viper.GetString("RESOURCE_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("RESOURCE_TIMEOUT_SECONDS")) * time.Second,
			Offline: viper.GetBool("OFFLINE_MODE"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:            time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ","),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
	}
}
