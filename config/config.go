package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration. Values come from an optional YAML
// file (CONFIG_PATH) and are then overridden by environment variables.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Mail     MailConfig     `yaml:"mail"`
}

type AppConfig struct {
	Env                  string        `yaml:"env"`
	Port                 string        `yaml:"port"`
	JWTSecret            string        `yaml:"jwt_secret"`
	TokenTTL             time.Duration `yaml:"-"`
	TokenTTLRaw          string        `yaml:"token_ttl"`
	RateLimitPerMin      int           `yaml:"rate_limit_per_min"`
	StandardMonthlyHours float64       `yaml:"standard_monthly_hours"`
	CORSOrigins          string        `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	AutoMigrate        bool          `yaml:"auto_migrate"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	CacheTTL    time.Duration `yaml:"-"`
	CacheTTLRaw string        `yaml:"cache_ttl"`
}

type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

func defaults() Config {
	return Config{
		App: AppConfig{
			Env:                  "development",
			Port:                 "3000",
			JWTSecret:            "change-me",
			TokenTTLRaw:          "24h",
			RateLimitPerMin:      120,
			StandardMonthlyHours: 176,
			CORSOrigins:          "*",
		},
		Database: DatabaseConfig{
			Host:               "127.0.0.1",
			Port:               3306,
			User:               "root",
			Name:               "hr_management",
			AutoMigrate:        true,
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeRaw: "1h",
		},
		Redis: RedisConfig{
			CacheTTLRaw: "5m",
		},
		Mail: MailConfig{
			Port: 587,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at CONFIG_PATH
// when set, then environment variables.
func Load() (*Config, error) {
	cfg := defaults()

	if path := GetEnv("CONFIG_PATH", ""); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.App.Env = GetEnv("APP_ENV", c.App.Env)
	c.App.Port = GetEnv("APP_PORT", c.App.Port)
	c.App.JWTSecret = GetEnv("JWT_SECRET", c.App.JWTSecret)
	c.App.TokenTTLRaw = GetEnv("TOKEN_TTL", c.App.TokenTTLRaw)
	c.App.RateLimitPerMin = GetEnvAsInt("RATE_LIMIT_PER_MIN", c.App.RateLimitPerMin)
	c.App.StandardMonthlyHours = GetEnvAsFloat("STANDARD_MONTHLY_HOURS", c.App.StandardMonthlyHours)
	c.App.CORSOrigins = GetEnv("CORS_ORIGINS", c.App.CORSOrigins)

	c.Database.Host = GetEnv("DB_HOST", c.Database.Host)
	c.Database.Port = GetEnvAsInt("DB_PORT", c.Database.Port)
	c.Database.User = GetEnv("DB_USER", c.Database.User)
	c.Database.Password = GetEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = GetEnv("DB_NAME", c.Database.Name)
	c.Database.AutoMigrate = GetEnvAsBool("DB_AUTO_MIGRATE", c.Database.AutoMigrate)
	c.Database.MaxOpenConns = GetEnvAsInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = GetEnvAsInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetimeRaw = GetEnv("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetimeRaw)

	c.Redis.Addr = GetEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = GetEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = GetEnvAsInt("REDIS_DB", c.Redis.DB)
	c.Redis.CacheTTLRaw = GetEnv("CACHE_TTL", c.Redis.CacheTTLRaw)

	c.Mail.Host = GetEnv("SMTP_HOST", c.Mail.Host)
	c.Mail.Port = GetEnvAsInt("SMTP_PORT", c.Mail.Port)
	c.Mail.Username = GetEnv("SMTP_USERNAME", c.Mail.Username)
	c.Mail.Password = GetEnv("SMTP_PASSWORD", c.Mail.Password)
	c.Mail.From = GetEnv("SMTP_FROM", c.Mail.From)
}

func (c *Config) validateAndNormalize() error {
	if c.App.Port == "" {
		return errors.New("config: app.port must be set")
	}
	if c.App.JWTSecret == "" {
		return errors.New("config: app.jwt_secret must be set")
	}
	if c.App.StandardMonthlyHours <= 0 {
		return errors.New("config: app.standard_monthly_hours must be positive")
	}
	if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
		return errors.New("config: database host, name and user must be set")
	}

	var err error
	if c.App.TokenTTL, err = parseDurationAllowEmpty(c.App.TokenTTLRaw); err != nil {
		return fmt.Errorf("config: app.token_ttl: %w", err)
	}
	if c.App.TokenTTL == 0 {
		c.App.TokenTTL = 24 * time.Hour
	}
	if c.Database.ConnMaxLifetime, err = parseDurationAllowEmpty(c.Database.ConnMaxLifetimeRaw); err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	if c.Redis.CacheTTL, err = parseDurationAllowEmpty(c.Redis.CacheTTLRaw); err != nil {
		return fmt.Errorf("config: redis.cache_ttl: %w", err)
	}
	return nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

// DSN is the go-sql-driver/mysql connection string used by gorm.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// MigrateURL is the golang-migrate database URL for the same database.
func (d DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s?multiStatements=true",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsFloat(key string, fallback float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
