package filesystem

import "io"

// File represents a file or directory discovered by a walk.
type File interface {
	// Path returns the path as visited, i.e. the walked root joined with the
	// entry's relative path. Relative roots produce relative paths.
	Path() string

	// RelativePath returns the path relative to the walked root
	RelativePath() string

	// Name returns the base name
	Name() string

	// IsDir reports whether the entry is a directory. A symbolic link to a
	// directory counts as one but is not descended into.
	IsDir() bool
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the directory path as it was opened
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for each
	// file and directory, the root included.
	// Traversal problems are reported as fn(nil, err); returning nil from fn
	// skips the problem entry and continues. Returning fs.SkipAll stops the
	// walk without error; any other error stops it and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// OpenFile opens a file for streaming reads. The caller closes it.
	OpenFile(path string) (io.ReadCloser, error)
}
