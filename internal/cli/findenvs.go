package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/envscan/internal/files/scanner"
)

var findenvsCmd = &cobra.Command{
	Use:   "findenvs",
	Short: "List env files under a directory tree",
	Long: `List every file whose name ends with --suffix, one path per line.

Directories are walked recursively from --parent. When --dirpattern is set,
only files in directories whose path contains a match are listed; directories
that do not match are still descended into.

Finding nothing is not an error: the command prints nothing and exits 0.

Examples:
  # All .env files below the current directory
  envscan findenvs

  # Only files in directories whose path mentions "api"
  envscan findenvs --parent ./services --dirpattern api

  # Files ending in .env.production, as JSON
  envscan findenvs --suffix .env.production -o json`,
	Args: cobra.NoArgs,
	RunE: runFindEnvs,
}

var findFlags = defaultSearchFlags()

func init() {
	rootCmd.AddCommand(findenvsCmd)
	addSearchFlags(findenvsCmd, &findFlags)
}

func runFindEnvs(cmd *cobra.Command, args []string) error {
	session, err := newSearchSession(cmd, findFlags)
	if err != nil {
		return err
	}

	files := scanner.NewScanner(session.logger).Candidates(session.config)
	return session.reporter.Paths(files)
}
