package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PageSize     int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type JWTConfig struct {
	Secret    string
	Issuer    string
	AccessTTL time.Duration
}

// EmailConfig describes the outbound SMTP relay. An empty Host switches the
// sender to log-only delivery.
type EmailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
	PresignExpiry   time.Duration
}

// Enabled reports whether poster uploads are configured.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != "" && m.AccessKeyID != "" && m.SecretAccessKey != ""
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			PageSize:     getIntOrDefault("API_PAGE_SIZE", 10),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "yamdb"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		JWT: JWTConfig{
			Secret:    os.Getenv("JWT_SECRET"),
			Issuer:    getEnvOrDefault("JWT_ISSUER", "yamdb"),
			AccessTTL: getDurationOrDefault("JWT_ACCESS_TTL", 24*time.Hour),
		},
		Email: EmailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvOrDefault("SMTP_PORT", "587"),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnvOrDefault("EMAIL_FROM", "noreply@yamdb.local"),
		},
		MinIO: MinIOConfig{
			Endpoint:        os.Getenv("AWS_ENDPOINT"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "posters"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
			PublicURL:       os.Getenv("AWS_URL"),
			PresignExpiry:   getDurationOrDefault("AWS_PRESIGN_EXPIRY", 15*time.Minute),
		},
	}
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Email.Host != "" && c.Email.From == "" {
		return fmt.Errorf("EMAIL_FROM is required when SMTP_HOST is set")
	}
	if c.MinIO.Endpoint != "" && (c.MinIO.AccessKeyID == "" || c.MinIO.SecretAccessKey == "") {
		return fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required for MinIO")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
