package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// DatabaseURL, when set, wins over the DB_* fields.
	DatabaseURL string

	JWTSecret             string
	CancellationPolicy    services.CancellationPolicy
	CapacityAuditSchedule string
	CapacityAutoReconcile bool
}

// LoadConfig reads the process environment after loading files, .env by
// default. Missing files are skipped; variables already set are not
// overridden.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	policy, err := services.ParseCancellationPolicy(os.Getenv("TOUR_CANCELLATION_POLICY"))
	if err != nil {
		return Config{}, err
	}

	autoReconcile := false
	if raw := strings.TrimSpace(os.Getenv("CAPACITY_AUTO_RECONCILE")); raw != "" {
		if autoReconcile, err = strconv.ParseBool(raw); err != nil {
			return Config{}, fmt.Errorf("CAPACITY_AUTO_RECONCILE: %w", err)
		}
	}

	config := Config{
		HTTPPort:              envOr("HTTP_PORT", "8080"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                envOr("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOr("DB_SSLMODE", "disable"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		JWTSecret:             os.Getenv("AUTH_JWT_SECRET"),
		CancellationPolicy:    policy,
		CapacityAuditSchedule: envOr("CAPACITY_AUDIT_SCHEDULE", jobs.DefaultAuditSchedule),
		CapacityAutoReconcile: autoReconcile,
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.JWTSecret == "" {
		problems = append(problems, errors.New("AUTH_JWT_SECRET is required"))
	}
	if c.DatabaseURL == "" && c.DBHost == "" {
		problems = append(problems, errors.New("DATABASE_URL or DB_HOST is required"))
	}
	return errors.Join(problems...)
}

// DSN returns the libpq connection string for gorm's postgres driver.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	var kvs []string
	for _, kv := range [][2]string{
		{"host", c.DBHost},
		{"port", c.DBPort},
		{"user", c.DBUser},
		{"password", c.DBPassword},
		{"dbname", c.DBName},
		{"sslmode", c.DBSslMode},
	} {
		if kv[1] != "" {
			kvs = append(kvs, kv[0]+"='"+dsnEscaper.Replace(kv[1])+"'")
		}
	}
	return strings.Join(kvs, " "), nil
}

// same quoting as pq.ParseURL
var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
