package values

import (
	"bufio"
	"fmt"
	"iter"
	"regexp"
	"strings"
	"unicode"

	"github.com/vvka-141/envscan/internal/files/filesystem"
	"github.com/vvka-141/envscan/pkg/envscan"
)

// Extractor collects the values assigned to a variable across env files.
type Extractor struct {
	fsProvider filesystem.FileSystemProvider
	logger     envscan.Logger
}

// NewExtractor creates an extractor reading files through fsProvider.
// Panics if fsProvider or logger is nil.
func NewExtractor(fsProvider filesystem.FileSystemProvider, logger envscan.Logger) *Extractor {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// space matches Unicode whitespace around '='. RE2's \s alone is ASCII-only
// and misses separators such as U+00A0.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// AssignmentPattern returns the line pattern for assignments to variable.
// The name is matched literally; regex metacharacters in it carry no meaning.
func AssignmentPattern(variable string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(variable) + space + `*=` + space + `*(.*)$`)
}

// NormalizeValue cuts an assigned value at its first '#' and trims the rest.
// Trimming removes the same whitespace the assignment pattern accepts.
func NormalizeValue(raw string) string {
	value, _, _ := strings.Cut(raw, "#")
	return strings.TrimFunc(value, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Extract scans every file in files for assignments to variable and groups
// the files by assigned value.
//
// Every matching line adds the file once more, so a file assigning the
// variable twice appears twice under that value. A file that cannot be opened
// or read is logged and skipped, and contributes nothing to the index.
func (e *Extractor) Extract(files iter.Seq[envscan.CandidateFile], variable string) (*envscan.ValueIndex, error) {
	if variable == "" {
		return nil, fmt.Errorf("%w: variable name must not be empty", envscan.ErrInvalidConfig)
	}

	pattern := AssignmentPattern(variable)
	index := envscan.NewValueIndex()

	for file := range files {
		found, err := e.scanFile(file.Path, pattern)
		if err != nil {
			e.logger.Error("Skipping %s: %v", file.Path, err)
			continue
		}
		e.logger.Verbose("%s: %d assignment(s) of %s", file.Path, len(found), variable)

		for _, value := range found {
			index.Add(value, file.Path)
		}
	}

	return index, nil
}

// scanFile returns the normalized values assigned in one file, in line order.
func (e *Extractor) scanFile(path string, pattern *regexp.Regexp) ([]string, error) {
	rc, err := e.fsProvider.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, envscan.InitialLineBuffer), envscan.MaxLineLength)

	var found []string
	for scanner.Scan() {
		matches := pattern.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}
		found = append(found, NormalizeValue(matches[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return found, nil
}
