// Package config loads tint's persistent settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. defaults embedded in the binary (embedded/defaults.toml)
//  2. the user config file, config.toml or config.yaml in the config
//     directory, or the file named by TINT_CONFIG_PATH
//  3. TINT_* environment variables, e.g. TINT_THEME or TINT_STYLE
//
// Command line flags are applied on top of the result by package app.
package config
