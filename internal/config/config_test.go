package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.RosterDB != ":memory:" {
		t.Errorf("RosterDB = %q, want :memory:", cfg.RosterDB)
	}
	if cfg.QRSize != 180 || cfg.MapZoom != 13 {
		t.Errorf("QRSize, MapZoom = %d, %d, want 180, 13", cfg.QRSize, cfg.MapZoom)
	}
	if cfg.MapCenterLat != -12.0464 || cfg.MapCenterLng != -77.0428 {
		t.Errorf("center = %v,%v, want Lima", cfg.MapCenterLat, cfg.MapCenterLng)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("QR_SIZE", "256")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.QRSize != 256 {
		t.Errorf("QRSize = %d, want 256", cfg.QRSize)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("QR_SIZE", "big")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-integer QR_SIZE")
	}
}
