package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/config"
)

func TestCacheLocationXDG(t *testing.T) {
	customCache := t.TempDir()
	t.Setenv(cache.EnvXDGCache, customCache)
	t.Setenv(cache.EnvRedisURL, "")

	dir, err := cacheLocation(config.Default())
	if err != nil {
		t.Fatalf("cacheLocation() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheLocation() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestCacheLocationRedis(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		config string
		want   string
	}{
		{
			name:   "config",
			config: "redis://localhost:6379/2",
			want:   "redis://localhost:6379/2",
		},
		{
			name:   "env wins over config",
			env:    "redis://cache.internal:6379/0",
			config: "redis://localhost:6379/2",
			want:   "redis://cache.internal:6379/0",
		},
		{
			name: "password redacted",
			env:  "redis://:hunter2@cache.internal:6379/0",
			want: "redis://:xxxxx@cache.internal:6379/0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(cache.EnvRedisURL, tt.env)
			cfg := config.Default()
			cfg.Cache.RedisURL = tt.config

			got, err := cacheLocation(cfg)
			if err != nil {
				t.Fatalf("cacheLocation() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheLocation() = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "hunter2") {
				t.Errorf("cacheLocation() leaked the password: %q", got)
			}
		})
	}
}
