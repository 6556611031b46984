package stackvm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileIsZeroValue(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error, got %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero Config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stackvm.toml")
	contents := "heap_capacity_hint = 64\ndisable_gc = true\ninput_buffer_limit = 256\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HeapCapacityHint != 64 || !cfg.DisableGC || cfg.InputBufferLimit != 256 {
		t.Fatalf("decoded config mismatch: %+v", cfg)
	}
}

func TestInputLimitDefaultsWhenUnset(t *testing.T) {
	var cfg Config
	if cfg.inputLimit() != DefaultInputLimit {
		t.Fatalf("got %d, want %d", cfg.inputLimit(), DefaultInputLimit)
	}
	cfg.InputBufferLimit = 10
	if cfg.inputLimit() != 10 {
		t.Fatalf("got %d, want 10", cfg.inputLimit())
	}
}
