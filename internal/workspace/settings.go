// Package workspace reads and writes VS Code workspace colour customisations.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/tintbar/internal/colour"
)

// customisationsKey is the VS Code settings key holding colour overrides.
// The American spelling is part of the settings schema.
const customisationsKey = "workbench.colorCustomizations"

// Title bar keys written for an applied colour pair.
const (
	keyActiveBackground   = "titleBar.activeBackground"
	keyActiveForeground   = "titleBar.activeForeground"
	keyInactiveBackground = "titleBar.inactiveBackground"
	keyInactiveForeground = "titleBar.inactiveForeground"
	keyBorder             = "titleBar.border"
)

// settingsPaths lists the locations a workspace may keep its settings,
// in precedence order.
func settingsPaths(dir string) []string {
	return []string{
		filepath.Join(dir, ".vscode", "settings.json"),
		filepath.Join(dir, "settings.json"),
	}
}

// readSettings loads a settings file into a generic map. A missing or
// malformed file yields (nil, false).
func readSettings(path string) (map[string]any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, false
	}
	return settings, true
}

// writeSettings persists the settings map, preserving key content written by
// other tools. Four-space indentation matches what VS Code itself writes.
func writeSettings(path string, settings map[string]any) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Colour returns the title bar colour pair currently applied to the
// workspace, checking both settings locations. Returns false when the
// workspace has no colour customisation; unreadable or malformed settings
// files are treated the same way.
func Colour(dir string) (colour.Pair, bool) {
	for _, path := range settingsPaths(dir) {
		settings, ok := readSettings(path)
		if !ok {
			continue
		}

		customisations, ok := settings[customisationsKey].(map[string]any)
		if !ok {
			continue
		}

		bg, ok := customisations[keyActiveBackground].(string)
		if !ok {
			continue
		}
		fg, _ := customisations[keyActiveForeground].(string)

		return colour.Pair{Background: bg, Foreground: fg}, true
	}
	return colour.Pair{}, false
}

// Apply writes the colour pair into the workspace's .vscode/settings.json,
// creating the directory if needed and merging with any existing settings.
func Apply(dir string, pair colour.Pair) error {
	vscodeDir := filepath.Join(dir, ".vscode")
	if err := os.MkdirAll(vscodeDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", vscodeDir, err)
	}
	path := filepath.Join(vscodeDir, "settings.json")

	settings, ok := readSettings(path)
	if !ok {
		settings = make(map[string]any)
	}

	customisations, ok := settings[customisationsKey].(map[string]any)
	if !ok {
		customisations = make(map[string]any)
	}

	customisations[keyActiveBackground] = pair.Background
	customisations[keyActiveForeground] = pair.Foreground
	customisations[keyInactiveBackground] = pair.Background
	customisations[keyInactiveForeground] = pair.Foreground
	customisations[keyBorder] = pair.Background
	settings[customisationsKey] = customisations

	return writeSettings(path, settings)
}

// Reset removes the colour customisations from every settings location the
// workspace has. Settings files without customisations are left untouched.
func Reset(dir string) error {
	for _, path := range settingsPaths(dir) {
		settings, ok := readSettings(path)
		if !ok {
			continue
		}
		if _, present := settings[customisationsKey]; !present {
			continue
		}

		delete(settings, customisationsKey)
		if err := writeSettings(path, settings); err != nil {
			return err
		}
	}
	return nil
}
