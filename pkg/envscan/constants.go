package envscan

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed (regardless of match count)
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid search configuration
)

const (
	// DefaultParent is the directory scanned when --parent is not given.
	DefaultParent = "."

	// MatchAllPattern is the directory pattern sentinel that disables directory filtering.
	MatchAllPattern = "*"

	// DefaultSuffix is the file name suffix identifying env files.
	DefaultSuffix = ".env"

	// InitialLineBuffer is the starting buffer size for reading env file lines.
	InitialLineBuffer = 1024 * 1024

	// MaxLineLength is the longest line the extractor accepts before
	// treating the file as unreadable.
	MaxLineLength = 10 * 1024 * 1024
)
