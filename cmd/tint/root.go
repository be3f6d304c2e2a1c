// Package tint implements the tint command line.
package tint

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tint/internal/version"
	"github.com/arthur-debert/tint/pkg/app"
	"github.com/arthur-debert/tint/pkg/assets"
	"github.com/arthur-debert/tint/pkg/config"
	"github.com/arthur-debert/tint/pkg/controller"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/gate"
	"github.com/arthur-debert/tint/pkg/listing"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/paths"
	"github.com/arthur-debert/tint/pkg/style"
	"github.com/arthur-debert/tint/pkg/topics"
)

// rootFlags are the values of the render and listing options
type rootFlags struct {
	verbosity     int
	theme         string
	style         string
	plain         bool
	terminalWidth string
	lineRanges    []string
	paging        string
	pager         string
	color         string
	language      string
	tabs          int

	listLanguages      bool
	listThemes         bool
	generateConfigFile bool
	configFile         bool
}

// Result carries the outcome of a run out of cobra. OK is false when some
// inputs failed and were already reported.
type Result struct {
	OK bool
}

// Run executes tint with args and returns the process exit code
func Run(args []string, s Streams) int {
	result := &Result{OK: true}
	rootCmd := NewRootCmd(s, result)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return gate.Handle(result.OK, err, s.Err, s.errPalette())
}

// NewRootCmd builds the command tree. The outcome of the render and
// listing modes is stored in result.
func NewRootCmd(s Streams, result *Result) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	f := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "tint [flags] [file ...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(f.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := runRoot(cmd, args, f, s)
			result.OK = ok
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetIn(s.In)
	rootCmd.SetOut(s.Out)
	rootCmd.SetErr(s.Err)
	rootCmd.SetVersionTemplate(fmt.Sprintf("tint %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.New(errors.ErrArgument, err.Error())
	})

	rootCmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.StringVar(&f.theme, "theme", "", MsgFlagTheme)
	flags.StringVar(&f.style, "style", "", MsgFlagStyle)
	flags.BoolVarP(&f.plain, "plain", "p", false, MsgFlagPlain)
	flags.StringVar(&f.terminalWidth, "terminal-width", "", MsgFlagTerminalWidth)
	flags.StringArrayVarP(&f.lineRanges, "line-range", "r", nil, MsgFlagLineRange)
	flags.StringVar(&f.paging, "paging", "", MsgFlagPaging)
	flags.StringVar(&f.pager, "pager", "", MsgFlagPager)
	flags.StringVar(&f.color, "color", "", MsgFlagColor)
	flags.StringVarP(&f.language, "language", "l", "", MsgFlagLanguage)
	flags.IntVar(&f.tabs, "tabs", 4, MsgFlagTabs)
	flags.BoolVarP(&f.listLanguages, "list-languages", "L", false, MsgFlagListLanguages)
	flags.BoolVar(&f.listThemes, "list-themes", false, MsgFlagListThemes)
	flags.BoolVar(&f.generateConfigFile, "generate-config-file", false, MsgFlagGenerateCfg)
	flags.BoolVar(&f.configFile, "config-file", false, MsgFlagConfigFile)
	rootCmd.MarkFlagsMutuallyExclusive("list-languages", "list-themes", "generate-config-file", "config-file")
	rootCmd.MarkFlagsMutuallyExclusive("plain", "style")
	_ = rootCmd.RegisterFlagCompletionFunc("theme", themeCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("language", languageCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("style", fixedCompletion("full", "plain", "changes", "header", "grid", "numbers", "snip"))
	_ = rootCmd.RegisterFlagCompletionFunc("paging", fixedCompletion("auto", "always", "never"))
	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion("auto", "always", "never"))

	rootCmd.AddCommand(newCacheCmd(s))

	if tm, err := topics.New(topics.Options{
		Renderer: topics.NewGlamourRenderer(s.Env.StdoutTTY && s.Env.Profile != nil, s.Env.Width),
	}); err == nil {
		tm.Install(rootCmd)
	} else {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// runRoot dispatches the render and listing modes
func runRoot(cmd *cobra.Command, args []string, f *rootFlags, s Streams) (bool, error) {
	logger := logging.GetLogger("cmd.root")

	if f.configFile {
		_, err := fmt.Fprintln(s.Out, paths.New().ConfigFile())
		return true, errors.FromIO(err)
	}
	if f.generateConfigFile {
		path := paths.New().ConfigFile()
		if err := config.GenerateConfigFile(path); err != nil {
			return false, err
		}
		_, err := fmt.Fprintf(s.Out, MsgConfigWritten, path)
		return true, errors.FromIO(err)
	}

	settings, err := config.Load()
	if err != nil {
		return false, err
	}

	opts := app.Options{
		Files:         args,
		Theme:         f.theme,
		Style:         f.style,
		Plain:         f.plain,
		TerminalWidth: f.terminalWidth,
		LineRanges:    f.lineRanges,
		Paging:        f.paging,
		Pager:         f.pager,
		Color:         f.color,
		Language:      f.language,
		Tabs:          -1,
		Listing:       f.listLanguages || f.listThemes,
	}
	if cmd.Flags().Changed("tabs") {
		opts.Tabs = f.tabs
	}

	cfg, err := app.New(opts, settings, s.Env)
	if err != nil {
		return false, err
	}

	a, err := assets.Load()
	if err != nil {
		return false, err
	}

	palette := style.NewPalette(s.Out, cfg.Profile)
	switch {
	case f.listLanguages:
		logger.Debug().Int("width", cfg.TermWidth).Msg("Listing languages")
		return true, listing.ListLanguages(s.Out, a, cfg.TermWidth, palette)
	case f.listThemes:
		logger.Debug().Int("themes", len(a.Themes())).Msg("Listing themes")
		runner := &controller.Runner{Assets: a, Stdout: s.Out, Stderr: s.Err, ErrPalette: s.errPalette()}
		return true, listing.ListThemes(s.Out, a, cfg, runner, palette)
	}

	logger.Debug().
		Int("files", len(cfg.Files)).
		Str("theme", cfg.Theme).
		Str("style", cfg.OutputComponents.String()).
		Msg("Rendering")
	if s.Pager {
		return controller.New(cfg, a).Run()
	}
	return controller.New(cfg, a).WithStreams(s.In, s.Out, s.Err, s.errPalette()).Run()
}
