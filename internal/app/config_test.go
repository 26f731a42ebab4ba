package app

import (
	"flag"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 960 || cfg.Height != 640 {
		t.Fatalf("default size = %dx%d, want 960x640", cfg.Width, cfg.Height)
	}
	if cfg.TPS != 60 {
		t.Fatalf("default TPS = %d, want 60", cfg.TPS)
	}
	if cfg.Seed != 42 {
		t.Fatalf("default seed = %d, want 42", cfg.Seed)
	}
}

func TestConfigBindOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-width", "800", "-seed", "99"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 800 {
		t.Fatalf("width = %d, want 800", cfg.Width)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed = %d, want 99", cfg.Seed)
	}
	if cfg.Height != 640 {
		t.Fatalf("height changed to %d despite no flag", cfg.Height)
	}
}
