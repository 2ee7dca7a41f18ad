// Package envscan holds the public types shared by the envscan commands:
// the search configuration, the candidate files produced by a directory walk,
// the value index built by the extractor, and the sentinel errors and exit
// codes used by the CLI.
package envscan
