// Package filesystem provides the directory-walking and file-opening
// abstraction the scanner and extractor are built on.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories for walking and files for reading
//   - Directory: A tree that can be walked in lexical order
//   - File: An entry discovered by a walk
//
// Implementations:
//   - OSFileSystem: Production implementation on top of filepath.WalkDir
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
