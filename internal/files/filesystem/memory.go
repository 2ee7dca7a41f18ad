package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	isDir   bool
	openErr error
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Name() string         { return path.Base(f.absPath) }
func (f *memoryFile) IsDir() bool          { return f.isDir }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	// Component-wise ordering visits a directory's contents before its
	// siblings, the same order filepath.WalkDir produces.
	slices.SortFunc(entries, func(a, b *memoryFile) int {
		return slices.Compare(strings.Split(a.absPath, "/"), strings.Split(b.absPath, "/"))
	})

	for _, entry := range entries {
		file := *entry
		if rel, err := filepath.Rel(d.absPath, entry.absPath); err == nil {
			file.relPath = filepath.ToSlash(rel)
		}

		if err := fn(&file, nil); err != nil {
			if err == fs.SkipAll {
				return nil
			}
			return err
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = &memoryFile{absPath: root, relPath: ".", isDir: true}

	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: []byte(content),
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddUnreadableFile adds a file that is listed by walks but fails to open with err.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string, err error) {
	mfs.AddFile(filePath, "")
	mfs.files[mfs.resolve(filePath)].openErr = err
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		isDir:   true,
	}
	mfs.ensureDirectoriesExist(absPath)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	rel, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		return absPath
	}
	return filepath.ToSlash(rel)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: mfs.relative(dir),
		isDir:   true,
	}

	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile

	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}

		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", &fs.PathError{Op: "stat", Path: openPath, Err: fs.ErrNotExist})
	}
	if !file.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{
		absPath: absPath,
		fs:      mfs,
	}, nil
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string) (io.ReadCloser, error) {
	absPath := mfs.resolve(filePath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if file.openErr != nil {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: file.openErr}
	}

	return io.NopCloser(bytes.NewReader(file.content)), nil
}
