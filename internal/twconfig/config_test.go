package twconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultChunkSize != 0 || cfg.Palette != nil {
		t.Fatalf("expected zero-value Config, got %+v", cfg)
	}
}

func TestLoadFromParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "default_chunk_size: 8192\n" +
		"default_capabilities:\n  supports_dec_private: true\n" +
		"palette:\n  default: \"#ffffff\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultChunkSize != 8192 {
		t.Fatalf("DefaultChunkSize = %d, want 8192", cfg.DefaultChunkSize)
	}
	if !cfg.DefaultCapabilities.SupportsDECPrivate {
		t.Fatal("expected SupportsDECPrivate to be true")
	}
	if cfg.Palette["default"] != "#ffffff" {
		t.Fatalf("palette[default] = %q, want #ffffff", cfg.Palette["default"])
	}
}
