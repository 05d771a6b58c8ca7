package common

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_DefaultPort(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_StorageEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_STORAGE_ADDRESS", "ws://db:9000")
	t.Setenv("FOLIO_DATA_PATH", "/var/folio")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Storage.Address != "ws://db:9000" {
		t.Errorf("Storage.Address = %q, want %q", cfg.Storage.Address, "ws://db:9000")
	}
	if cfg.Storage.DataPath != "/var/folio" {
		t.Errorf("Storage.DataPath = %q, want %q", cfg.Storage.DataPath, "/var/folio")
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.toml")
	content := `
environment = "production"

[server]
port = 3000

[clients.coingecko]
base_url = "http://localhost:1234"
timeout = "5s"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("expected production environment")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Clients.CoinGecko.BaseURL != "http://localhost:1234" {
		t.Errorf("CoinGecko.BaseURL = %q, want %q", cfg.Clients.CoinGecko.BaseURL, "http://localhost:1234")
	}
	if got := cfg.Clients.CoinGecko.GetTimeout(); got != 5*time.Second {
		t.Errorf("CoinGecko.GetTimeout() = %v, want 5s", got)
	}
	// Unset values keep defaults
	if cfg.Storage.Namespace != "folio" {
		t.Errorf("Storage.Namespace = %q, want default %q", cfg.Storage.Namespace, "folio")
	}
}

func TestConfig_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/folio.toml")
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestConfig_TimeoutFallback(t *testing.T) {
	c := CoinGeckoConfig{Timeout: "not-a-duration"}
	if got := c.GetTimeout(); got != 30*time.Second {
		t.Errorf("GetTimeout() = %v for invalid duration, want 30s", got)
	}
}

func TestConfig_RefreshIntervalFallback(t *testing.T) {
	r := RefreshConfig{Interval: ""}
	if got := r.GetInterval(); got != time.Minute {
		t.Errorf("GetInterval() = %v for empty interval, want 1m", got)
	}
}

func TestResolveAPIKey_EnvWins(t *testing.T) {
	t.Setenv("FMP_API_KEY", "from-env")

	key, err := ResolveAPIKey(context.Background(), nil, "fmp_api_key", "from-config")
	if err != nil {
		t.Fatalf("ResolveAPIKey returned error: %v", err)
	}
	if key != "from-env" {
		t.Errorf("ResolveAPIKey = %q, want %q", key, "from-env")
	}
}

func TestResolveAPIKey_FallbackUsed(t *testing.T) {
	key, err := ResolveAPIKey(context.Background(), nil, "fmp_api_key", "from-config")
	if err != nil {
		t.Fatalf("ResolveAPIKey returned error: %v", err)
	}
	if key != "from-config" {
		t.Errorf("ResolveAPIKey = %q, want %q", key, "from-config")
	}
}

func TestResolveAPIKey_NotFound(t *testing.T) {
	if _, err := ResolveAPIKey(context.Background(), nil, "fmp_api_key", ""); err == nil {
		t.Error("expected error when key is unresolvable")
	}
}

func TestIsFresh(t *testing.T) {
	if IsFresh(time.Time{}, time.Hour) {
		t.Error("zero time should never be fresh")
	}
	if !IsFresh(time.Now().Add(-time.Second), time.Minute) {
		t.Error("1s old timestamp should be fresh within 1m TTL")
	}
	if IsFresh(time.Now().Add(-2*time.Hour), time.Hour) {
		t.Error("2h old timestamp should be stale with 1h TTL")
	}
}
