package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for tint
	EnvConfigDir = "TINT_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for tint
	EnvCacheDir = "TINT_CACHE_DIR"

	// EnvConfigPath overrides the location of the config file
	EnvConfigPath = "TINT_CONFIG_PATH"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for tint-specific files
	AppDirName = "tint"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// ConfigFileNameYAML is the alternative YAML configuration file
	ConfigFileNameYAML = "config.yaml"

	// SyntaxesDir is the subdirectory holding raw syntax definitions
	SyntaxesDir = "syntaxes"

	// ThemesDir is the subdirectory holding raw theme definitions
	ThemesDir = "themes"

	// AssetBundleFile is the name of the serialized asset bundle
	AssetBundleFile = "assets.xml"
)

// Paths provides centralized path management for tint
type Paths interface {
	ConfigDir() string
	CacheDir() string
	ConfigFile() string
	AssetBundlePath() string
}

type paths struct {
	configDir string
	cacheDir  string
}

// New creates a Paths instance from the current environment.
func New() Paths {
	// adrg/xdg snapshots the environment at init; pick up later changes.
	xdg.Reload()

	p := &paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		cacheDir:  filepath.Join(xdg.CacheHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		p.cacheDir = expandHome(dir)
	}
	return p
}

// ConfigDir returns the configuration directory for tint
func (p *paths) ConfigDir() string {
	return p.configDir
}

// CacheDir returns the cache directory for tint
func (p *paths) CacheDir() string {
	return p.cacheDir
}

// ConfigFile returns the path of the user configuration file. An existing
// YAML file wins over the TOML default.
func (p *paths) ConfigFile() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return expandHome(path)
	}
	yamlPath := filepath.Join(p.configDir, ConfigFileNameYAML)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	return filepath.Join(p.configDir, ConfigFileName)
}

// AssetBundlePath returns the location of the serialized asset bundle
func (p *paths) AssetBundlePath() string {
	return filepath.Join(p.cacheDir, AssetBundleFile)
}

// ConfigDir returns the configuration directory for the current environment
func ConfigDir() string {
	return New().ConfigDir()
}

// CacheDir returns the cache directory for the current environment
func CacheDir() string {
	return New().CacheDir()
}

// SyntaxSourceDir returns the directory holding syntax definitions below source
func SyntaxSourceDir(source string) string {
	return filepath.Join(source, SyntaxesDir)
}

// ThemeSourceDir returns the directory holding theme definitions below source
func ThemeSourceDir(source string) string {
	return filepath.Join(source, ThemesDir)
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
