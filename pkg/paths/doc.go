// Package paths provides centralized path handling for tint.
//
// This package resolves the per-platform configuration and cache locations
// through the XDG Base Directory specification (adrg/xdg maps it to the
// native locations on macOS and Windows) and names every file tint reads or
// writes inside them.
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - TINT_CONFIG_DIR: Override config directory (default: $XDG_CONFIG_HOME/tint)
//   - TINT_CACHE_DIR: Override cache directory (default: $XDG_CACHE_HOME/tint)
//   - TINT_CONFIG_PATH: Override the config file location
//
// # Directory Structure
//
//   - Config: $XDG_CONFIG_HOME/tint
//   - config.toml (or config.yaml), the user configuration
//   - syntaxes/*.xml, user syntax definitions (cache --init source)
//   - themes/*.xml, user themes (cache --init source)
//   - Cache: $XDG_CACHE_HOME/tint
//   - assets.xml, the serialized asset bundle
package paths
