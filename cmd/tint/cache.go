package tint

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tint/pkg/assets"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/paths"
)

type cacheFlags struct {
	init      bool
	clear     bool
	configDir bool
	source    string
	target    string
	blank     bool
}

func newCacheCmd(s Streams) *cobra.Command {
	f := &cacheFlags{}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: MsgCacheShort,
		Long:  MsgCacheLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCache(cmd, f, s)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.init, "init", false, MsgFlagCacheInit)
	flags.BoolVar(&f.clear, "clear", false, MsgFlagCacheClear)
	flags.BoolVar(&f.configDir, "config-dir", false, MsgFlagCacheCfgDir)
	flags.StringVar(&f.source, "source", "", MsgFlagCacheSource)
	flags.StringVar(&f.target, "target", "", MsgFlagCacheTarget)
	flags.BoolVar(&f.blank, "blank", false, MsgFlagCacheBlank)
	cmd.MarkFlagsMutuallyExclusive("init", "clear", "config-dir")
	cmd.MarkFlagsOneRequired("init", "clear", "config-dir")

	return cmd
}

// runCache never loads the rendering assets unless it is asked to build them
func runCache(cmd *cobra.Command, f *cacheFlags, s Streams) error {
	logger := logging.GetLogger("cmd.cache")

	if !f.init && (cmd.Flags().Changed("source") || cmd.Flags().Changed("target") || f.blank) {
		return errors.New(errors.ErrArgument, MsgErrCacheInitOnly)
	}

	switch {
	case f.init:
		logger.Info().Str("source", f.source).Str("target", f.target).Bool("blank", f.blank).Msg("Building cache")
		source, target := paths.ExpandHome(f.source), paths.ExpandHome(f.target)
		a, err := assets.LoadFromFiles(source, f.blank)
		if err != nil {
			return err
		}
		return a.Save(target)

	case f.clear:
		return assets.Clear()

	case f.configDir:
		_, err := fmt.Fprintln(s.Out, paths.ConfigDir())
		return errors.FromIO(err)
	}

	return errors.New(errors.ErrArgument, MsgErrCacheNoMode)
}
