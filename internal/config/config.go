package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DataSourceMemory = "memory"
	DataSourceMongo  = "mongo"

	defaultJWTSecret = "change-me-admin-dashboard-secret"
)

// Config holds all configuration for the service.
type Config struct {
	ServiceName           string `mapstructure:"SERVICE_NAME"`
	HTTPPort              string `mapstructure:"HTTP_PORT"`
	PrometheusMetricsPort string `mapstructure:"PROMETHEUS_METRICS_PORT"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogFormat             string `mapstructure:"LOG_FORMAT"`
	LogOutputFile         string `mapstructure:"LOG_OUTPUT_FILE"`

	DataSource    string `mapstructure:"DATA_SOURCE"`
	FixturesPath  string `mapstructure:"FIXTURES_PATH"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	RedisAddress  string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	QueryCacheTTL time.Duration `mapstructure:"QUERY_CACHE_TTL"`

	NATSURL string `mapstructure:"NATS_URL"`

	MinioEndpoint  string        `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string        `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string        `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string        `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL    bool          `mapstructure:"MINIO_USE_SSL"`
	ImageURLTTL    time.Duration `mapstructure:"IMAGE_URL_TTL"`

	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUsername     string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPSenderEmail  string `mapstructure:"SMTP_SENDER_EMAIL"`
	AdminNotifyEmail string `mapstructure:"ADMIN_NOTIFY_EMAIL"`

	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTExpiry         time.Duration `mapstructure:"JWT_EXPIRY"`
	AuthEnabled       bool          `mapstructure:"AUTH_ENABLED"`
	AdminEmail        string        `mapstructure:"ADMIN_EMAIL"`
	AdminPassword     string        `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string        `mapstructure:"ADMIN_PASSWORD_HASH"`

	ActionDelay time.Duration `mapstructure:"ACTION_DELAY"`
	LoginDelay  time.Duration `mapstructure:"LOGIN_DELAY"`

	OTExporterOTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "admin-service")
	v.SetDefault("HTTP_PORT", "8085")
	v.SetDefault("PROMETHEUS_METRICS_PORT", "9095")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT_FILE", "stdout")

	v.SetDefault("DATA_SOURCE", DataSourceMemory)
	v.SetDefault("FIXTURES_PATH", "")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "bonti")

	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("QUERY_CACHE_TTL", "30s")

	v.SetDefault("NATS_URL", "")

	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "houses")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("IMAGE_URL_TTL", "15m")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_SENDER_EMAIL", "no-reply@bonti.com")
	v.SetDefault("ADMIN_NOTIFY_EMAIL", "")

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY", "12h")
	v.SetDefault("AUTH_ENABLED", true)
	v.SetDefault("ADMIN_EMAIL", "admin@bonti.com")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")

	v.SetDefault("ACTION_DELAY", "500ms")
	v.SetDefault("LOGIN_DELAY", "1500ms")

	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

// LoadConfig reads configuration from environment variables. The .env file,
// if any, is loaded by main before this is called.
func LoadConfig(appLogger *logger.Logger) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		appLogger.Error("Failed to unmarshal configuration", zap.Error(err))
		return nil, err
	}
	cfg.DataSource = strings.ToLower(cfg.DataSource)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == defaultJWTSecret {
		appLogger.Warn("JWT_SECRET is set to its default insecure value. Please set a strong secret in your environment.")
	}
	if cfg.AdminPasswordHash == "" {
		appLogger.Warn("ADMIN_PASSWORD_HASH is not set, the plain ADMIN_PASSWORD will be hashed at startup.")
	}

	appLogger.Debug("Configuration loaded",
		zap.String("service_name", cfg.ServiceName),
		zap.String("http_port", cfg.HTTPPort),
		zap.String("data_source", cfg.DataSource),
		zap.String("mongo_database", cfg.MongoDatabase),
		zap.Bool("redis_enabled", cfg.RedisAddress != ""),
		zap.Bool("nats_enabled", cfg.NATSURL != ""),
		zap.Bool("minio_enabled", cfg.MinioEndpoint != ""),
		zap.Bool("smtp_enabled", cfg.SMTPHost != ""),
		zap.Bool("auth_enabled", cfg.AuthEnabled),
		zap.String("prometheus_port", cfg.PrometheusMetricsPort),
		zap.String("log_level", cfg.LogLevel),
		zap.String("otel_endpoint", cfg.OTExporterOTLPEndpoint),
	)

	return &cfg, nil
}

// Logger returns the settings the application logger is built from.
func (c *Config) Logger() *logger.LoggerConfig {
	return &logger.LoggerConfig{
		Level:      strings.ToLower(c.LogLevel),
		Format:     strings.ToLower(c.LogFormat),
		OutputFile: c.LogOutputFile,
	}
}

func (c *Config) validate() error {
	switch c.DataSource {
	case DataSourceMemory:
	case DataSourceMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return fmt.Errorf("DATA_SOURCE=mongo requires MONGO_URI and MONGO_DATABASE")
		}
	default:
		return fmt.Errorf("unsupported DATA_SOURCE %q", c.DataSource)
	}
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	if c.AuthEnabled && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	if c.ActionDelay < 0 || c.LoginDelay < 0 {
		return fmt.Errorf("ACTION_DELAY and LOGIN_DELAY must not be negative")
	}
	return nil
}
