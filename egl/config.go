// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings holds the host settings of a Manager.
type Settings struct {
	// Platform names a built-in Platform. Ignored if WithPlatform is
	// passed to NewManager.
	Platform string `toml:"platform" yaml:"platform"`
	// Layered requests configs with an alpha channel, for hosts that
	// allow transparent windows.
	Layered bool `toml:"layered" yaml:"layered"`
	// ShaderCacheRoot is the writable directory holding the shader
	// cache. Empty means the user cache directory.
	ShaderCacheRoot    string `toml:"shader_cache_root" yaml:"shader_cache_root"`
	DisableShaderCache bool   `toml:"disable_shader_cache" yaml:"disable_shader_cache"`
	// DriverName names the cache subdirectory below shader_cache.
	DriverName string `toml:"driver_name" yaml:"driver_name"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
}

const defaultDriverName = "EGL"

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{
		Platform:   defaultPlatform,
		DriverName: defaultDriverName,
		LogLevel:   "info",
	}
}

// LoadSettings reads a TOML or YAML settings file, chosen by extension.
// Fields missing from the file keep their DefaultSettings values.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("egl: reading settings: %w", err)
	}
	cfg := DefaultSettings()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Settings{}, fmt.Errorf("egl: unsupported settings format %q", ext)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("egl: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func (c Settings) validate() error {
	if c.Platform != "" {
		if _, ok := LookupPlatform(c.Platform); !ok {
			return fmt.Errorf("egl: unknown platform %q (want one of %s)", c.Platform, strings.Join(PlatformNames(), ", "))
		}
	}
	switch {
	case c.DriverName == "." || c.DriverName == "..":
		return fmt.Errorf("egl: invalid driver name %q", c.DriverName)
	case strings.ContainsAny(c.DriverName, `/\`):
		return fmt.Errorf("egl: driver name %q contains a path separator", c.DriverName)
	}
	return nil
}
