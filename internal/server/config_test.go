package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default max body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}

	opts := cfg.CacheOptions()
	if opts.Backend != "memory" || opts.TTL != time.Hour || opts.MaxEntries != constants.DefaultCacheMaxEntries {
		t.Fatalf("unexpected cache defaults %+v", opts)
	}
	if cfg.RateLimit.Requests != constants.DefaultRateLimitRequests || cfg.RateLimitWindow() != time.Minute {
		t.Fatalf("unexpected rate limit defaults %+v / %s", cfg.RateLimit, cfg.RateLimitWindow())
	}
	if cfg.SiteURL != constants.DefaultSiteURL || cfg.Production {
		t.Fatalf("unexpected site defaults %q production=%v", cfg.SiteURL, cfg.Production)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 2M
siteURL: https://mortgage.example.org/
production: true
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
cache:
  backend: redis
  redisAddress: 127.0.0.1:6379
  ttl: 15m
  maxEntries: 100
rateLimit:
  requests: 10
  window: 30s
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Fatalf("expected max body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.SiteURL != "https://mortgage.example.org" {
		t.Fatalf("expected trailing slash trimmed from site URL, got %s", cfg.SiteURL)
	}
	if !cfg.Production {
		t.Fatal("expected production override")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" || cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}

	opts := cfg.CacheOptions()
	if opts.Backend != "redis" || opts.RedisAddress != "127.0.0.1:6379" || opts.TTL != 15*time.Minute || opts.MaxEntries != 100 {
		t.Fatalf("unexpected cache options %+v", opts)
	}
	if cfg.RateLimit.Requests != 10 || cfg.RateLimitWindow() != 30*time.Second {
		t.Fatalf("unexpected rate limit %+v / %s", cfg.RateLimit, cfg.RateLimitWindow())
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"Invalid size":     "maxBodySize: invalid",
		"Invalid TTL":      "cache:\n  ttl: forever",
		"Invalid window":   "rateLimit:\n  window: soon",
		"Negative window":  "rateLimit:\n  window: -1m",
		"Malformed YAML":   "address: [",
		"Unsupported unit": "maxBodySize: 1TB",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("expected an error but got nil")
			}
		})
	}
}

func TestSetBodySizeBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetBodySizeBytes(1024)
	if cfg.BodySizeBytes() != 1024 || cfg.MaxBodySize != "1024" {
		t.Fatalf("unexpected body size %d / %s", cfg.BodySizeBytes(), cfg.MaxBodySize)
	}

	cfg.SetBodySizeBytes(0)
	if cfg.BodySizeBytes() != 1024 {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.BodySizeBytes())
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("parseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("parseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("a") || !limiter.Allow("a") {
		t.Fatal("expected the first two requests to pass")
	}
	if limiter.Allow("a") {
		t.Fatal("expected the third request within the window to be rejected")
	}
	if !limiter.Allow("b") {
		t.Fatal("clients must not share buckets")
	}

	now = now.Add(time.Minute)
	if !limiter.Allow("a") {
		t.Fatal("expected the bucket to refill after the window")
	}

	now = now.Add(2 * time.Hour)
	limiter.Allow("c")
	if got := limiter.Clients(); got != 1 {
		t.Fatalf("expected idle buckets to be swept, %d remain", got)
	}
}
