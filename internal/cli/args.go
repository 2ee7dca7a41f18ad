package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/envscan/pkg/envscan"
)

// RequireVariable validates that exactly one VARIABLE argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireVariable(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <variable>

Usage: %s

Example:
  %s DATABASE_URL --parent ./services`, envscan.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", envscan.ErrUsage, len(args))
	}
	return nil
}
