package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/envscan/internal/files/filesystem"
	"github.com/vvka-141/envscan/internal/files/scanner"
	"github.com/vvka-141/envscan/internal/values"
)

var getvaluesCmd = &cobra.Command{
	Use:   "getvalues <variable>",
	Short: "Report the values a variable is assigned across env files",
	Long: `Scan every env file for lines assigning <variable> and group the files by
the value they assign.

A line matches when it starts with the variable name, optionally followed by
whitespace, then '='. The value is everything after '=', cut at the first '#'
and trimmed. The name is matched literally. A file assigning the variable on
several lines is listed once per line.

Files that cannot be read are reported on stderr and skipped.

Examples:
  # Which services disagree about DATABASE_URL?
  envscan getvalues DATABASE_URL --parent ./services

  # Only staging directories, machine-readable
  envscan getvalues LOG_LEVEL --dirpattern staging -o yaml`,
	Args: RequireVariable,
	RunE: runGetValues,
}

var getValuesFlags = defaultSearchFlags()

func init() {
	rootCmd.AddCommand(getvaluesCmd)
	addSearchFlags(getvaluesCmd, &getValuesFlags)
}

func runGetValues(cmd *cobra.Command, args []string) error {
	variable := args[0]

	session, err := newSearchSession(cmd, getValuesFlags)
	if err != nil {
		return err
	}

	fsProvider := filesystem.NewOSFileSystem()
	files := scanner.NewScannerWithFS(fsProvider, session.logger).Candidates(session.config)

	index, err := values.NewExtractor(fsProvider, session.logger).Extract(files, variable)
	if err != nil {
		return err
	}
	session.logger.Verbose("Found %d distinct value(s) for %s", index.Len(), variable)

	return session.reporter.Values(variable, index)
}
