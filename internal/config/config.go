package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	JWT        JWTConfig
	Log        LogConfig
	CORS       CORSConfig
	Settlement SettlementConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT verification settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SettlementConfig holds settlement engine settings.
type SettlementConfig struct {
	// Timezone is the IANA zone used to resolve "current month" and month boundaries.
	Timezone     string        `mapstructure:"timezone"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// Location loads the reporting timezone.
func (s *SettlementConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading settlement timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from environment variables with the TRIBUTO_
// prefix. A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TRIBUTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "45s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "tributo")
	v.SetDefault("db.password", "tributo_secret")
	v.SetDefault("db.name", "tributo_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.issuer", "tributo")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Settlement defaults
	v.SetDefault("settlement.timezone", "America/Santiago")
	v.SetDefault("settlement.query_timeout", "30s")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "TRIBUTO_SERVER_PORT",
		"server.read_timeout":      "TRIBUTO_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "TRIBUTO_SERVER_WRITE_TIMEOUT",
		"server.environment":       "TRIBUTO_SERVER_ENVIRONMENT",
		"db.host":                  "TRIBUTO_DB_HOST",
		"db.port":                  "TRIBUTO_DB_PORT",
		"db.user":                  "TRIBUTO_DB_USER",
		"db.password":              "TRIBUTO_DB_PASSWORD",
		"db.name":                  "TRIBUTO_DB_NAME",
		"db.sslmode":               "TRIBUTO_DB_SSLMODE",
		"db.max_open":              "TRIBUTO_DB_MAX_OPEN",
		"db.max_idle":              "TRIBUTO_DB_MAX_IDLE",
		"jwt.secret":               "TRIBUTO_JWT_SECRET",
		"jwt.access_expiry":        "TRIBUTO_JWT_ACCESS_EXPIRY",
		"jwt.issuer":               "TRIBUTO_JWT_ISSUER",
		"log.level":                "TRIBUTO_LOG_LEVEL",
		"log.format":               "TRIBUTO_LOG_FORMAT",
		"cors.allowed_origins":     "TRIBUTO_CORS_ALLOWED_ORIGINS",
		"settlement.timezone":      "TRIBUTO_SETTLEMENT_TIMEZONE",
		"settlement.query_timeout": "TRIBUTO_SETTLEMENT_QUERY_TIMEOUT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TRIBUTO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TRIBUTO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Settlement = SettlementConfig{
		Timezone:     v.GetString("settlement.timezone"),
		QueryTimeout: v.GetDuration("settlement.query_timeout"),
	}

	if _, err := cfg.Settlement.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}
