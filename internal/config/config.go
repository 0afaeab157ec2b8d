package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreRedis    = "redis"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志，由命令行设置
	ForceMigrate bool   `mapstructure:"-"`
	File         string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	// sqlite 数据文件
	Path string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type QuizConfig struct {
	Store        string `mapstructure:"store"`
	PassingScore int    `mapstructure:"passing_score"`
}

type AuthConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	JWTSecret  string `mapstructure:"jwt_secret"`
	DemoUserID string `mapstructure:"demo_user_id"`
}

type LogConfig struct {
	Path string `mapstructure:"path"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("quiz.store", StoreMemory)
	v.SetDefault("quiz.passing_score", 70)
	v.SetDefault("auth.demo_user_id", "demo-user")
	v.SetDefault("log.path", "logs/app.log")
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CREDIT_EDU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "PORT")

	// Identity provider
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("auth.jwt_secret", "SUPABASE_JWT_SECRET")

	// Quiz
	v.BindEnv("quiz.store", "QUIZ_STORE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.File = filepath.Clean(v.ConfigFileUsed())

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	switch c.Quiz.Store {
	case StoreMemory, StoreDatabase, StoreRedis:
	default:
		return fmt.Errorf("unknown quiz store %q", c.Quiz.Store)
	}

	if c.Quiz.PassingScore < 0 || c.Quiz.PassingScore > 100 {
		return fmt.Errorf("quiz passing score %d out of range 0-100", c.Quiz.PassingScore)
	}

	// 启用鉴权时必须配置身份提供方的 JWT 密钥
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth is enabled but jwt secret is empty")
	}
	if c.Server.Mode == "release" && c.Auth.Enabled && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	return nil
}

// NeedsDatabase 是否需要建立数据库连接
func (c *Config) NeedsDatabase() bool {
	return c.Quiz.Store == StoreDatabase
}

func (c *Config) NeedsRedis() bool {
	return c.Quiz.Store == StoreRedis
}
