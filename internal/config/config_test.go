package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/tintbar/internal/colour"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
    "parent_directories": ["~/projects", "/srv/work"],
    "colors": [
        {"name": "Crimson", "background": "#C81E1E", "foreground": "#ffffff"},
        {"name": "Mustard", "background": "#fadc5a", "foreground": "#000000"}
    ]
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.ParentDirectories) != 2 {
		t.Errorf("ParentDirectories = %v, want 2 entries", cfg.ParentDirectories)
	}
	if len(cfg.Colours) != 2 {
		t.Fatalf("Colours = %v, want 2 entries", cfg.Colours)
	}

	first := cfg.Colours[0]
	if first.Name != "Crimson" {
		t.Errorf("first colour name = %q, want Crimson", first.Name)
	}
	want := colour.Pair{Background: "#C81E1E", Foreground: "#ffffff"}
	if first.Pair() != want {
		t.Errorf("first colour pair = %+v, want %+v", first.Pair(), want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed JSON")
	}
}

func TestLoadRejectsBadHex(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad background",
			content: `{"colors": [
                {"name": "Broken", "background": "#zzz", "foreground": "#ffffff"}
            ]}`,
		},
		{
			name: "bad foreground",
			content: `{"colors": [
                {"name": "Broken", "background": "#112233", "foreground": "white"}
            ]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected validation error")
			}
			if !errors.Is(err, colour.ErrInvalidFormat) {
				t.Errorf("Load() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := &Config{
		ParentDirectories: []string{"~/projects"},
		Colours: []NamedColour{
			{Name: "Colour 1", Background: "#143ca0", Foreground: "#ffffff"},
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Colours) != 1 || loaded.Colours[0] != cfg.Colours[0] {
		t.Errorf("Load() = %+v, want %+v", loaded.Colours, cfg.Colours)
	}
}
