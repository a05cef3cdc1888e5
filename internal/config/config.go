// Package config loads the configurator's preferences: a JSON file under config/,
// optionally overridden by CONFIGURATOR_* variables from the environment or a .env file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/configurator.json"

// Prefs holds window and asset preferences. None of them change how a selection is applied.
type Prefs struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	TargetFPS    int    `json:"target_fps"`
	ShowFPS      bool   `json:"show_fps"`
	Locale       string `json:"locale"`
	// CatalogPath points at a YAML finish catalog; empty uses the built-in one.
	CatalogPath string `json:"catalog_path,omitempty"`
	// TextureCacheDir is where remote textures are saved after download.
	TextureCacheDir string `json:"texture_cache_dir"`
	// WallColor tints every wall; empty keeps the authored color.
	WallColor string `json:"wall_color,omitempty"`
	// Font is a font file or family name searched under assets/fonts; empty takes the first font found.
	Font    string `json:"font,omitempty"`
	LogPath string `json:"log_path"`
}

// Default returns the built-in preferences.
func Default() Prefs {
	return Prefs{
		WindowWidth:     1280,
		WindowHeight:    720,
		TargetFPS:       60,
		ShowFPS:         false,
		Locale:          "es",
		TextureCacheDir: "assets/textures/cache",
		LogPath:         "logs/configurator.txt",
	}
}

// Load reads preferences from path. A missing file yields Default() and no error.
// Fields absent from the file keep their default values. An unreadable or invalid
// file yields Default() and the error, so the caller can log it and carry on.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p.normalized(), nil
}

// LoadOrCreate is Load, except that a missing file is written with the defaults so
// there is something to edit. created reports whether that happened.
func LoadOrCreate(path string) (p Prefs, created bool, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		p = Default()
		return p, true, Save(path, p)
	}
	p, err = Load(path)
	return p, false, err
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// normalized replaces out-of-range values with defaults.
func (p Prefs) normalized() Prefs {
	d := Default()
	if p.WindowWidth <= 0 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = d.WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.Locale == "" {
		p.Locale = d.Locale
	}
	if p.TextureCacheDir == "" {
		p.TextureCacheDir = d.TextureCacheDir
	}
	return p
}
