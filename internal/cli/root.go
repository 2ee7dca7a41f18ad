package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/envscan/pkg/envscan"
)

var rootCmd = &cobra.Command{
	Use:   "envscan",
	Short: "Find env files and audit variable values across a directory tree",
	Long: `envscan walks a directory tree looking for environment-definition files
(names ending in .env by default) and either lists them or reports every
distinct value a variable is assigned, grouped by the files that assign it.

Typical use: spotting configuration drift between services, e.g. which
services point DATABASE_URL somewhere different from the rest.

Only plain KEY=VALUE lines are understood. Text after the first '#' is a
comment; no quoting, escaping or interpolation is applied.

Exit Codes:
  0  - Success (also when nothing matched)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (bad --dirpattern, unknown --output, ...)

A --parent that does not exist is reported on stderr and searched as empty.`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	verbose bool
	color   string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&rootFlags.color, "color", "auto",
		"Colorize text output: auto|always|never")
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", envscan.ErrUsage, err)
	})
}
