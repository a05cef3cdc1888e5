package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix marks the environment variables that override preferences.
const EnvPrefix = "CONFIGURATOR_"

// ReadDotEnv parses a .env file of KEY=VALUE lines. Blank lines and # comments are
// skipped and surrounding quotes are removed. A missing file returns an empty map.
func ReadDotEnv(path string) (map[string]string, error) {
	vars := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return vars, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return vars, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

// ApplyEnv overrides p with CONFIGURATOR_* values from lookup (os.LookupEnv in production).
// Unparseable numbers and booleans are reported and leave the field unchanged.
func ApplyEnv(p Prefs, lookup func(string) (string, bool)) (Prefs, error) {
	var errs []error
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = n
	}
	flag := func(name string, dst *bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = b
	}
	num("WIDTH", &p.WindowWidth)
	num("HEIGHT", &p.WindowHeight)
	num("FPS", &p.TargetFPS)
	flag("SHOW_FPS", &p.ShowFPS)
	str("LOCALE", &p.Locale)
	str("CATALOG", &p.CatalogPath)
	str("TEXTURE_CACHE", &p.TextureCacheDir)
	str("WALL_COLOR", &p.WallColor)
	str("FONT", &p.Font)
	str("LOG", &p.LogPath)
	return p.normalized(), errors.Join(errs...)
}

// LookupWith returns a lookup over the process environment, falling back to vars (e.g. from ReadDotEnv).
func LookupWith(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
}
