package tint

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tint/pkg/assets"
)

// themeCompletion provides shell completion for --theme
func themeCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	a, err := assets.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return withPrefix(a.Themes(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// languageCompletion provides shell completion for --language
func languageCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	a, err := assets.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, s := range a.Syntaxes() {
		if s.Hidden {
			continue
		}
		names = append(names, s.Name)
	}
	return withPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// fixedCompletion completes a flag from a static list
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return withPrefix(values, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func withPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(prefix)) {
			out = append(out, c)
		}
	}
	return out
}
