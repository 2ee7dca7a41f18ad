// Package scanner walks a directory tree and yields the env files selected by
// an envscan.SearchConfig.
//
// The directory pattern is applied independently to every directory visited:
// a directory that does not match contributes none of its own files, but its
// subdirectories are still walked and filtered on their own paths. File names
// are selected by a literal suffix comparison.
//
// The path a pattern is searched in starts with the root exactly as it was
// given: with a root of "." the directory api is seen as "./api", so patterns
// such as "/api" or `^\./api` select it.
//
// Results are produced as an iter.Seq so callers can stream them; each range
// over the sequence performs a fresh walk. Ordering is lexical, as produced by
// filepath.WalkDir.
package scanner
