package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/envscan/internal/logging"
	"github.com/vvka-141/envscan/internal/report"
	"github.com/vvka-141/envscan/internal/ui"
	"github.com/vvka-141/envscan/pkg/envscan"
)

// searchFlagValues holds the flags shared by findenvs and getvalues.
type searchFlagValues struct {
	parent     string
	dirPattern string
	suffix     string
	output     string
}

func defaultSearchFlags() searchFlagValues {
	return searchFlagValues{
		parent:     envscan.DefaultParent,
		dirPattern: envscan.MatchAllPattern,
		suffix:     envscan.DefaultSuffix,
		output:     string(report.FormatText),
	}
}

// addSearchFlags registers the shared search flags on cmd, bound to flags.
func addSearchFlags(cmd *cobra.Command, flags *searchFlagValues) {
	defaults := defaultSearchFlags()

	cmd.Flags().StringVar(&flags.parent, "parent", defaults.parent,
		"Parent directory to search for env files")
	cmd.Flags().StringVar(&flags.dirPattern, "dirpattern", defaults.dirPattern,
		"Regular expression searched for in each directory path; '*' matches every directory.\n"+
			"Applied at every level: a non-matching directory is still descended into.")
	cmd.Flags().StringVar(&flags.suffix, "suffix", defaults.suffix,
		"File name suffix identifying env files (literal, not a pattern)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaults.output,
		"Output format: text|json|yaml")

	_ = cmd.RegisterFlagCompletionFunc("parent", completeDirectories)
	_ = cmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
}

// searchSession is what a command needs once its flags are validated.
type searchSession struct {
	config   envscan.SearchConfig
	reporter *report.Reporter
	logger   envscan.Logger
}

// newSearchSession validates flags and wires the logger and reporter to the
// command's output streams.
func newSearchSession(cmd *cobra.Command, flags searchFlagValues) (*searchSession, error) {
	cfg, err := envscan.NewSearchConfig(flags.parent, flags.dirPattern, flags.suffix)
	if err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(flags.output)
	if err != nil {
		return nil, err
	}

	colorMode, err := ui.ParseColorMode(rootFlags.color)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())
	logger.Verbose("Parent: %s, dirpattern: %s, suffix: %s, output: %s", cfg.Root, cfg.DirPattern, cfg.Suffix, format)

	return &searchSession{
		config:   cfg,
		reporter: report.New(out, format, ui.UseColor(colorMode, out)),
		logger:   logger,
	}, nil
}

func newLogger(w io.Writer) envscan.Logger {
	return logging.NewConsoleLoggerTo(w, rootFlags.verbose)
}
