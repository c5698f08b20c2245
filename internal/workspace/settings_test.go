package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/tintbar/internal/colour"
)

func writeTestSettings(t *testing.T, path string, settings map[string]any) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create settings dir: %v", err)
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		t.Fatalf("failed to encode settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
}

func readTestSettings(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	return settings
}

func TestColour(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string)
		wantPair colour.Pair
		wantOK   bool
	}{
		{
			name:  "no settings file",
			setup: func(t *testing.T, dir string) {},
		},
		{
			name: "settings without customisations",
			setup: func(t *testing.T, dir string) {
				writeTestSettings(t, filepath.Join(dir, ".vscode", "settings.json"), map[string]any{
					"editor.fontSize": 14,
				})
			},
		},
		{
			name: "vscode settings with colours",
			setup: func(t *testing.T, dir string) {
				writeTestSettings(t, filepath.Join(dir, ".vscode", "settings.json"), map[string]any{
					customisationsKey: map[string]any{
						keyActiveBackground: "#1a2b3c",
						keyActiveForeground: "#ffffff",
					},
				})
			},
			wantPair: colour.Pair{Background: "#1a2b3c", Foreground: "#ffffff"},
			wantOK:   true,
		},
		{
			name: "root settings with colours",
			setup: func(t *testing.T, dir string) {
				writeTestSettings(t, filepath.Join(dir, "settings.json"), map[string]any{
					customisationsKey: map[string]any{
						keyActiveBackground: "#c81e1e",
						keyActiveForeground: "#000000",
					},
				})
			},
			wantPair: colour.Pair{Background: "#c81e1e", Foreground: "#000000"},
			wantOK:   true,
		},
		{
			name: "malformed settings file",
			setup: func(t *testing.T, dir string) {
				path := filepath.Join(dir, ".vscode", "settings.json")
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			pair, ok := Colour(dir)
			if ok != tt.wantOK {
				t.Fatalf("Colour() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && pair != tt.wantPair {
				t.Errorf("Colour() = %+v, want %+v", pair, tt.wantPair)
			}
		})
	}
}

func TestApplyCreatesSettings(t *testing.T) {
	dir := t.TempDir()
	pair := colour.Pair{Background: "#143ca0", Foreground: "#ffffff"}

	if err := Apply(dir, pair); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	settings := readTestSettings(t, filepath.Join(dir, ".vscode", "settings.json"))
	customisations, ok := settings[customisationsKey].(map[string]any)
	if !ok {
		t.Fatalf("settings missing %s: %+v", customisationsKey, settings)
	}

	want := map[string]string{
		keyActiveBackground:   "#143ca0",
		keyActiveForeground:   "#ffffff",
		keyInactiveBackground: "#143ca0",
		keyInactiveForeground: "#ffffff",
		keyBorder:             "#143ca0",
	}
	for key, value := range want {
		if got := customisations[key]; got != value {
			t.Errorf("customisations[%s] = %v, want %s", key, got, value)
		}
	}
}

func TestApplyPreservesUnrelatedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".vscode", "settings.json")
	writeTestSettings(t, path, map[string]any{
		"editor.fontSize": 14,
		customisationsKey: map[string]any{
			"statusBar.background": "#111111",
		},
	})

	if err := Apply(dir, colour.Pair{Background: "#fadc5a", Foreground: "#000000"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	settings := readTestSettings(t, path)
	if got := settings["editor.fontSize"]; got != float64(14) {
		t.Errorf("editor.fontSize = %v, want 14", got)
	}

	customisations := settings[customisationsKey].(map[string]any)
	if got := customisations["statusBar.background"]; got != "#111111" {
		t.Errorf("statusBar.background = %v, want #111111", got)
	}
	if got := customisations[keyActiveBackground]; got != "#fadc5a" {
		t.Errorf("%s = %v, want #fadc5a", keyActiveBackground, got)
	}
}

func TestApplyThenColourRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pair := colour.Pair{Background: "#c81e1e", Foreground: "#ffffff"}

	if err := Apply(dir, pair); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	got, ok := Colour(dir)
	if !ok {
		t.Fatal("Colour() found no pair after Apply()")
	}
	if got != pair {
		t.Errorf("Colour() = %+v, want %+v", got, pair)
	}
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".vscode", "settings.json")
	writeTestSettings(t, path, map[string]any{
		"editor.fontSize": 14,
		customisationsKey: map[string]any{
			keyActiveBackground: "#1a2b3c",
		},
	})

	if err := Reset(dir); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	settings := readTestSettings(t, path)
	if _, present := settings[customisationsKey]; present {
		t.Errorf("Reset() left %s in settings", customisationsKey)
	}
	if got := settings["editor.fontSize"]; got != float64(14) {
		t.Errorf("Reset() removed unrelated key, editor.fontSize = %v", got)
	}

	if _, ok := Colour(dir); ok {
		t.Error("Colour() still reports a pair after Reset()")
	}
}

func TestResetNoSettings(t *testing.T) {
	// Resetting a workspace that never had settings is a no-op.
	if err := Reset(t.TempDir()); err != nil {
		t.Errorf("Reset() error = %v", err)
	}
}
