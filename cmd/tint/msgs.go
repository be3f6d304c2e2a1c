package tint

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort  = "Print files with syntax highlighting"
	MsgCacheShort = "Manage the syntax and theme cache"

	// Status messages
	MsgConfigWritten = "Config file written to %s\n"

	// Error messages
	MsgErrCacheNoMode   = "one of --init, --clear or --config-dir is required"
	MsgErrCacheInitOnly = "--source, --target and --blank require --init"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTheme         = "Highlighting theme, see --list-themes"
	MsgFlagStyle         = "Decorations: full, plain, changes, header, grid, numbers, snip"
	MsgFlagPlain         = "Show no decorations (same as --style plain)"
	MsgFlagTerminalWidth = "Output width in columns, or +N/-N relative to the terminal"
	MsgFlagLineRange     = "Only print lines N:M (repeatable, also N:, :M and N)"
	MsgFlagPaging        = "When to use a pager: auto, always, never"
	MsgFlagPager         = "Pager command line"
	MsgFlagColor         = "When to use colors: auto, always, never"
	MsgFlagLanguage      = "Language to highlight with, see --list-languages"
	MsgFlagTabs          = "Tab width, 0 passes tabs through"
	MsgFlagListLanguages = "List supported languages and their file extensions"
	MsgFlagListThemes    = "Preview every theme"
	MsgFlagGenerateCfg   = "Write a commented default config file"
	MsgFlagConfigFile    = "Print the location of the config file"
	MsgFlagCacheInit     = "Build the cache from the definitions in the source directory"
	MsgFlagCacheClear    = "Remove the cache"
	MsgFlagCacheCfgDir   = "Print the configuration directory"
	MsgFlagCacheSource   = "Directory holding syntaxes/ and themes/ (default: config directory)"
	MsgFlagCacheTarget   = "Directory to write the cache to (default: cache directory)"
	MsgFlagCacheBlank    = "Leave the built-in syntaxes out of the cache"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/cache-long.txt
	msgCacheLongRaw string
	MsgCacheLong    = strings.TrimSpace(msgCacheLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
