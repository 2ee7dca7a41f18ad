package envscan

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// SearchConfig describes which files a scan considers.
// Build it with NewSearchConfig; the value is not modified afterwards.
type SearchConfig struct {
	// Root is the directory the walk starts from
	Root string

	// DirPattern is searched for in every visited directory path.
	// MatchAllPattern disables the filter.
	DirPattern string

	// Suffix is compared literally against the end of each file name
	Suffix string

	dirRegexp *regexp.Regexp
}

// NewSearchConfig validates the inputs and compiles the directory pattern.
// An unparsable pattern is reported as ErrInvalidConfig.
func NewSearchConfig(root, dirPattern, suffix string) (SearchConfig, error) {
	if root == "" {
		root = DefaultParent
	}

	cfg := SearchConfig{
		Root:       root,
		DirPattern: dirPattern,
		Suffix:     suffix,
	}

	if dirPattern != MatchAllPattern {
		re, err := regexp.Compile(dirPattern)
		if err != nil {
			return SearchConfig{}, fmt.Errorf("%w: invalid directory pattern %q: %v", ErrInvalidConfig, dirPattern, err)
		}
		cfg.dirRegexp = re
	}

	return cfg, nil
}

// MatchDir reports whether files directly inside dir are eligible.
// The pattern matches anywhere in the path, not only at its start.
func (c SearchConfig) MatchDir(dir string) bool {
	if c.dirRegexp == nil {
		return true
	}
	return c.dirRegexp.MatchString(dir)
}

// MatchFile reports whether name ends with the configured suffix.
func (c SearchConfig) MatchFile(name string) bool {
	return strings.HasSuffix(name, c.Suffix)
}

// CandidateFile is a file selected by a SearchConfig.
type CandidateFile struct {
	Dir  string // Directory path as visited by the walk
	Name string // Base file name
	Path string // Dir joined with Name
}

// NewCandidateFile builds a CandidateFile for name inside dir.
func NewCandidateFile(dir, name string) CandidateFile {
	return CandidateFile{
		Dir:  dir,
		Name: name,
		Path: filepath.Join(dir, name),
	}
}

// ValueEntry is one row of a ValueIndex.
type ValueEntry struct {
	Value string   `json:"value" yaml:"value"`
	Files []string `json:"files" yaml:"files"`
}

// ValueIndex maps each distinct value of a variable to the files assigning it.
// Values and file lists keep insertion order.
type ValueIndex struct {
	order []string
	files map[string][]string
}

// NewValueIndex creates an empty index.
func NewValueIndex() *ValueIndex {
	return &ValueIndex{
		files: make(map[string][]string),
	}
}

// Add appends path to the files recorded for value.
// The same path may be added more than once.
func (v *ValueIndex) Add(value, path string) {
	if _, exists := v.files[value]; !exists {
		v.order = append(v.order, value)
		v.files[value] = []string{}
	}
	v.files[value] = append(v.files[value], path)
}

// Len returns the number of distinct values.
func (v *ValueIndex) Len() int { return len(v.order) }

// IsEmpty reports whether no value has been recorded.
func (v *ValueIndex) IsEmpty() bool { return len(v.order) == 0 }

// Values returns the distinct values in first-seen order.
func (v *ValueIndex) Values() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Files returns the paths recorded for value, or nil if value is unknown.
func (v *ValueIndex) Files(value string) []string {
	files, ok := v.files[value]
	if !ok {
		return nil
	}
	out := make([]string, len(files))
	copy(out, files)
	return out
}

// Entries returns the index as an ordered list of rows.
func (v *ValueIndex) Entries() []ValueEntry {
	entries := make([]ValueEntry, 0, len(v.order))
	for _, value := range v.order {
		entries = append(entries, ValueEntry{
			Value: value,
			Files: v.Files(value),
		})
	}
	return entries
}
