package app

import (
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/ngxblog/pkg/blobx"
	"github.com/aussiebroadwan/ngxblog/pkg/mailx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port int // HTTP server port (default: 3000)

	DBDriver     string // sqlite or postgres (default: sqlite)
	DatabaseFile string // SQLite database path (default: ./data/blog.db)
	DatabaseURL  string // Postgres URL, built from DB_HOST etc. when unset
	DBMaxConns   int    // Postgres pool size (default: 4)

	JWTSecret string // Required outside dev: HS256 signing secret
	AppDomain string // Prefix of reset links (default: http://localhost:<port>)

	SMTP        mailx.SMTPConfig // Mail is logged instead of sent when Host is empty
	MailTimeout time.Duration    // Per-message send deadline (default: 30s)
	S3          blobx.Config     // Uploads are disabled when Bucket is empty

	StaticDir string // Angular client directory (default: public/mini-client_angular)

	ResetTokenTTL    time.Duration // Pending resets older than this are cleared; 0 keeps them

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text, pretty) (default: json)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	port := getEnvIntOrDefault("PORT", getEnvIntOrDefault("APP_PORT", 3000))

	cfg := Config{
		Port:         port,
		DBDriver:     strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverSQLite)),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "./data/blog.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBMaxConns:   getEnvIntOrDefault("DB_CONLIMIT", 4),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AppDomain:    os.Getenv("APP_DOMAIN"),
		SMTP: mailx.SMTPConfig{
			Host:       os.Getenv("SMTP_HOST"),
			Port:       getEnvIntOrDefault("SMTP_PORT", 587),
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			TLS:        getEnvBoolOrDefault("SMTP_TLS", true),
			From:       getEnvOrDefault("MAIL_FROM", "no-reply@ngxblog.local"),
			FromName:   getEnvOrDefault("MAIL_FROM_NAME", "Ngx Blog"),
			RatePerSec: getEnvFloatOrDefault("MAIL_RATE_PER_SEC", 1),
			Burst:      getEnvIntOrDefault("MAIL_BURST", 5),
		},
		MailTimeout: getEnvDurationOrDefault("MAIL_TIMEOUT", 30*time.Second),
		S3: blobx.Config{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    getEnvOrDefault("S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
		},
		StaticDir:            getEnvOrDefault("STATIC_DIR", "public/mini-client_angular"),
		ResetTokenTTL:        getEnvDurationOrDefault("RESET_TOKEN_TTL", 0),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.DatabaseURL == "" && cfg.DBDriver == DriverPostgres {
		cfg.DatabaseURL = postgresURL(
			getEnvOrDefault("DB_HOST", "localhost"),
			getEnvOrDefault("DB_PORT", "5432"),
			getEnvOrDefault("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnvOrDefault("DB_NAME", "ngxblog"),
		)
	}

	return cfg
}

// Normalize fills values derived from other settings. It runs after CLI
// overrides so the derived values follow them.
func (c *Config) Normalize() {
	c.DBDriver = strings.ToLower(c.DBDriver)
	if c.AppDomain == "" {
		c.AppDomain = fmt.Sprintf("http://localhost:%d", c.Port)
	}
}

// IsDev reports whether the service runs in the dev environment.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}

	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
		if c.DBMaxConns < 1 || c.DBMaxConns > math.MaxInt32 {
			errs = append(errs, fmt.Errorf("DB_CONLIMIT=%d: must be between 1 and %d", c.DBMaxConns, math.MaxInt32))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q (want sqlite or postgres)", c.DBDriver))
	}

	if c.JWTSecret == "" && !c.IsDev() {
		errs = append(errs, errors.New("JWT_SECRET is required outside dev"))
	}

	return errors.Join(errs...)
}

func postgresURL(host, port, user, password, name string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}
	return u.String()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
