package scanner

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/vvka-141/envscan/internal/files/filesystem"
	"github.com/vvka-141/envscan/pkg/envscan"
)

// Scanner discovers candidate env files in a directory tree.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     envscan.Logger
}

// NewScanner creates a scanner on the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger envscan.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger envscan.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Candidates returns the files under cfg.Root selected by cfg.
//
// The walk runs lazily each time the returned sequence is ranged over and
// stops as soon as the loop breaks. A root that cannot be opened, or is not a
// directory, is logged and yields nothing. Entries that cannot be read during
// the walk are logged and skipped.
func (s *Scanner) Candidates(cfg envscan.SearchConfig) iter.Seq[envscan.CandidateFile] {
	return func(yield func(envscan.CandidateFile) bool) {
		dir, err := s.fsProvider.Open(cfg.Root)
		if err != nil {
			s.logger.Error("Cannot search parent directory %s: %v", cfg.Root, err)
			return
		}

		dirMatches := make(map[string]bool)

		err = dir.Walk(func(file filesystem.File, err error) error {
			if err != nil {
				s.logger.Verbose("Skipping unreadable entry: %v", err)
				return nil
			}
			if file.IsDir() {
				return nil
			}

			relDir := filepath.Dir(filepath.FromSlash(file.RelativePath()))
			matched, seen := dirMatches[relDir]
			if !seen {
				visited := visitedDir(dir.Path(), relDir)
				matched = cfg.MatchDir(visited)
				dirMatches[relDir] = matched
				if !matched {
					s.logger.Verbose("Directory %s does not match pattern %q", visited, cfg.DirPattern)
				}
			}
			if !matched || !cfg.MatchFile(file.Name()) {
				return nil
			}

			if !yield(envscan.NewCandidateFile(filepath.Dir(file.Path()), file.Name())) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			s.logger.Error("Walk of %s stopped: %v", cfg.Root, err)
		}
	}
}

// visitedDir renders the directory the pattern is searched in: the root
// exactly as given, followed by one separator and the path below it.
// A root of "." therefore yields "./api" rather than "api".
func visitedDir(root, relDir string) string {
	if relDir == "." {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + relDir
	}
	return root + string(filepath.Separator) + relDir
}
