package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/envscan/internal/report"
	"github.com/vvka-141/envscan/internal/ui"
)

func completeFromList(options []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, option := range options {
		if strings.HasPrefix(option, toComplete) {
			matches = append(matches, option)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeOutputFormats provides shell completion for --output values.
func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(report.Formats, toComplete)
}

// completeColorModes provides shell completion for --color values.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(ui.ColorModes, toComplete)
}

// completeDirectories lets the shell complete directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
