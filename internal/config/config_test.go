package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate runs the test in an empty directory with the config variables unset.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restore wd %s: %v", wd, err)
		}
	})

	for _, key := range []string{
		"APP_ENV", "ENV", "STORAGE_DRIVER", "STORAGE_PATH", "STORAGE_DSN",
		"REDIS_URL", "REDIS_KEY_PREFIX", "DATABASE_URL", "LOG_LEVEL",
		"DATABASE_MAX_CONNECTIONS", "DATABASE_MAX_CONN_LIFETIME",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "local" {
		t.Fatalf("expected env local, got %q", cfg.Env)
	}
	if cfg.Storage.Driver != DriverFile || cfg.Storage.Path != ".git-tutor/progress.json" {
		t.Fatalf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.Redis.KeyPrefix != "git-tutor:" {
		t.Fatalf("unexpected key prefix %q", cfg.Redis.KeyPrefix)
	}
	if cfg.DB.MaxConnLifetime != 30*time.Minute {
		t.Fatalf("unexpected lifetime %v", cfg.DB.MaxConnLifetime)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("unexpected log level %q", cfg.Log.Level)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("STORAGE_DSN", "file:progress.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "production" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected env/log %q/%q", cfg.Env, cfg.Log.Level)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.DSN != "file:progress.db" {
		t.Fatalf("unexpected storage %+v", cfg.Storage)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	doc := "storage:\n  driver: memory\nredis:\n  key_prefix: \"test:\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != DriverMemory || cfg.Redis.KeyPrefix != "test:" {
		t.Fatalf("config file not applied: %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	t.Cleanup(func() { _ = os.Unsetenv("STORAGE_DRIVER") })

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_DRIVER=memory\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Fatalf("expected .env to select memory driver, got %q", cfg.Storage.Driver)
	}
}

func TestLoad_DriverRequirements(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres"}, ErrMissingEnvironmentVariables},
		{"redis without url", map[string]string{"STORAGE_DRIVER": "redis"}, ErrMissingEnvironmentVariables},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "etcd"}, ErrUnknownStorageDriver},
		{"postgres with url", map[string]string{"STORAGE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/tutor"}, nil},
		{"redis with url", map[string]string{"STORAGE_DRIVER": "redis", "REDIS_URL": "redis://localhost:6379/0"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("load: %v", err)
				}
				if cfg.Storage.Driver == DriverPostgres && cfg.DB.URL == "" {
					t.Fatalf("expected DATABASE_URL to be loaded")
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
