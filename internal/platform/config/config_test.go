package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":3001",
		DatabaseURL:        "postgres://localhost/clickshr",
		JWTSecret:          "secret",
		MaxBodyBytes:       1048576,
		ProtectedResources: []string{ResourceUsers, ResourceJobApplications},
		Timezone:           "UTC",
		TokenTTL:           time.Hour,
		DBMaxConns:         4,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("TIMEZONE", "")

	cfg := Load()
	if cfg.Addr != ":3001" {
		t.Fatalf("expected default addr :3001, got %q", cfg.Addr)
	}
	if !cfg.Protects(ResourceUsers) || !cfg.Protects(ResourceJobApplications) {
		t.Fatalf("expected users and job-applications gated by default, got %v", cfg.ProtectedResources)
	}
	if cfg.Protects(ResourceTimesheets) {
		t.Fatal("timesheets should not be gated by default")
	}
	if cfg.TokenTTL != 8*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("PORT", "8088")
	if addr := Load().Addr; addr != ":8088" {
		t.Fatalf("expected :8088, got %q", addr)
	}
}

func TestLoadProtectedResourcesList(t *testing.T) {
	t.Setenv("AUTH_PROTECTED_RESOURCES", " users, timesheets ,,payroll")
	cfg := Load()
	for _, name := range []string{ResourceUsers, ResourceTimesheets, ResourcePayroll} {
		if !cfg.Protects(name) {
			t.Fatalf("expected %s to be gated", name)
		}
	}
	if cfg.Protects(ResourceJobApplications) {
		t.Fatal("job-applications should not be gated")
	}

	t.Setenv("AUTH_PROTECTED_RESOURCES", "")
	if got := Load().ProtectedResources; len(got) != 0 {
		t.Fatalf("expected no gated resources, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.DatabaseURL = " " }, wantErr: "DATABASE_URL"},
		{name: "missing secret while gated", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
		{name: "seed email without password", mutate: func(c *Config) { c.SeedAdminEmail = "admin@example.com" }, wantErr: "SEED_ADMIN"},
		{name: "no secret needed when nothing gated", mutate: func(c *Config) {
			c.JWTSecret = ""
			c.ProtectedResources = nil
		}},
		{name: "unknown resource", mutate: func(c *Config) { c.ProtectedResources = []string{"salaries"} }, wantErr: "unknown resource"},
		{name: "tiny body limit", mutate: func(c *Config) { c.MaxBodyBytes = 10 }, wantErr: "MAX_BODY_BYTES"},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: "TIMEZONE"},
		{name: "bad pool size", mutate: func(c *Config) { c.DBMaxConns = 0 }, wantErr: "DB_MAX_CONNS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
