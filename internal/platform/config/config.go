package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Resource group names accepted by AUTH_PROTECTED_RESOURCES.
const (
	ResourceUsers           = "users"
	ResourceJobApplications = "job-applications"
	ResourceRequests        = "requests"
	ResourceTimesheets      = "timesheets"
	ResourcePayroll         = "payroll"
	ResourceDashboard       = "dashboard"
)

var KnownResources = []string{
	ResourceUsers,
	ResourceJobApplications,
	ResourceRequests,
	ResourceTimesheets,
	ResourcePayroll,
	ResourceDashboard,
}

type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	RunMigrations      bool
	MaxBodyBytes       int64
	MetricsEnabled     bool
	CORSAllowedOrigins []string
	ProtectedResources []string
	Timezone           string
	TokenTTL           time.Duration
	DBMaxConns         int
	SeedAdminEmail     string
	SeedAdminPassword  string
}

func Load() Config {
	return Config{
		Addr:               getAddr(),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		Environment:        getEnv("APP_ENV", "development"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ProtectedResources: getEnvList("AUTH_PROTECTED_RESOURCES", []string{ResourceUsers, ResourceJobApplications}),
		Timezone:           getEnv("TIMEZONE", "Local"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 8*time.Hour),
		DBMaxConns:         getEnvInt("DB_MAX_CONNS", 10),
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", ""),
	}
}

// Protects reports whether the resource group sits behind the auth gate.
func (c Config) Protects(resource string) bool {
	for _, name := range c.ProtectedResources {
		if name == resource {
			return true
		}
	}
	return false
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func getAddr() string {
	if addr := os.Getenv("APP_ADDR"); addr != "" {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":3001"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvList splits a comma separated value. A set but blank variable yields
// an empty list, which for AUTH_PROTECTED_RESOURCES means nothing is gated.
func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(c.ProtectedResources) > 0 && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required while AUTH_PROTECTED_RESOURCES is not empty")
	}
	for _, name := range c.ProtectedResources {
		if !isKnownResource(name) {
			return fmt.Errorf("AUTH_PROTECTED_RESOURCES: unknown resource %q", name)
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if (c.SeedAdminEmail == "") != (c.SeedAdminPassword == "") {
		return fmt.Errorf("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE: %w", err)
	}
	return nil
}

func isKnownResource(name string) bool {
	for _, known := range KnownResources {
		if known == name {
			return true
		}
	}
	return false
}
