package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/envscan/internal/files/filesystem"
	"github.com/vvka-141/envscan/internal/logging"
	"github.com/vvka-141/envscan/pkg/envscan"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/project")
	return NewScannerWithFS(fs, logging.NewNullLogger()), fs
}

func mustConfig(t *testing.T, root, pattern, suffix string) envscan.SearchConfig {
	t.Helper()
	cfg, err := envscan.NewSearchConfig(root, pattern, suffix)
	require.NoError(t, err)
	return cfg
}

func collect(t *testing.T, s *Scanner, cfg envscan.SearchConfig) []string {
	t.Helper()
	var paths []string
	for c := range s.Candidates(cfg) {
		paths = append(paths, filepath.ToSlash(c.Path))
	}
	return paths
}

func TestNewScannerWithFS_NilArgs(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/")
	logger := logging.NewNullLogger()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil filesystem", func() { NewScannerWithFS(nil, logger) }},
		{"nil logger", func() { NewScannerWithFS(fs, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestCandidates_MatchAllReturnsExactlySuffixMatches(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile(".env", "")
	fs.AddFile("api/.env", "")
	fs.AddFile("api/prod.env", "")
	fs.AddFile("api/.env.example", "")
	fs.AddFile("web/config.yaml", "")
	fs.AddFile("web/deep/nested/local.env", "")
	fs.AddDir("empty")

	got := collect(t, s, mustConfig(t, "/project", envscan.MatchAllPattern, ".env"))

	assert.Equal(t, []string{
		"/project/.env",
		"/project/api/.env",
		"/project/api/prod.env",
		"/project/web/deep/nested/local.env",
	}, got)
}

func TestCandidates_DirPatternAppliesAtEveryLevel(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile(".env", "")
	fs.AddFile("billing/.env", "")
	fs.AddFile("billing/worker/.env", "")
	fs.AddFile("web/.env", "")
	fs.AddFile("web/billing-proxy/.env", "")
	fs.AddFile("web/static/.env", "")

	got := collect(t, s, mustConfig(t, "/project", "billing", ".env"))

	assert.Equal(t, []string{
		"/project/billing/.env",
		"/project/billing/worker/.env",
		"/project/web/billing-proxy/.env",
	}, got)
}

func TestCandidates_NonMatchingParentStillDescends(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("services/.env", "")
	fs.AddFile("services/api/.env", "")

	got := collect(t, s, mustConfig(t, "/project", "api$", ".env"))

	assert.Equal(t, []string{"/project/services/api/.env"}, got)
}

func TestCandidates_EmptyResult(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("README.md", "")

	got := collect(t, s, mustConfig(t, "/project", envscan.MatchAllPattern, ".env"))
	assert.Empty(t, got)
}

func TestCandidates_MissingRootYieldsNothing(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("file.env", "")
	var buf bytes.Buffer
	s := NewScannerWithFS(fs, logging.NewConsoleLoggerTo(&buf, false))

	tests := []struct {
		name string
		root string
	}{
		{"missing", "/project/nope"},
		{"not a directory", "/project/file.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			got := collect(t, s, mustConfig(t, tt.root, envscan.MatchAllPattern, ".env"))
			assert.Empty(t, got)
			assert.Contains(t, buf.String(), "[ERROR] Cannot search parent directory "+tt.root)
		})
	}
}

func TestCandidates_PatternSeesRootPrefix(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile(".env", "")
	fs.AddFile("api/.env", "")
	fs.AddFile("web/api/.env", "")

	got := collect(t, s, mustConfig(t, "/project", "^/project/api", ".env"))
	assert.Equal(t, []string{"/project/api/.env"}, got)

	got = collect(t, s, mustConfig(t, "/project", "^/project$", ".env"))
	assert.Equal(t, []string{"/project/.env"}, got)
}

func TestVisitedDir(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		root   string
		relDir string
		want   string
	}{
		{".", ".", "."},
		{".", "api", "." + sep + "api"},
		{"services", filepath.Join("api", "v1"), "services" + sep + filepath.Join("api", "v1")},
		{"services" + sep, "api", "services" + sep + "api"},
	}
	for _, tt := range tests {
		t.Run(tt.root+"|"+tt.relDir, func(t *testing.T) {
			assert.Equal(t, tt.want, visitedDir(tt.root, tt.relDir))
		})
	}
}

func TestCandidates_IsRestartable(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("a/.env", "")
	fs.AddFile("b/.env", "")

	seq := s.Candidates(mustConfig(t, "/project", envscan.MatchAllPattern, ".env"))

	var first, second []envscan.CandidateFile
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestCandidates_BreakStopsWalk(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("a/.env", "")
	fs.AddFile("b/.env", "")
	fs.AddFile("c/.env", "")

	var got []string
	for c := range s.Candidates(mustConfig(t, "/project", envscan.MatchAllPattern, ".env")) {
		got = append(got, c.Path)
		break
	}
	assert.Equal(t, []string{"/project/a/.env"}, got)
}

func TestCandidates_CandidateFields(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("svc/api/prod.env", "")

	var got []envscan.CandidateFile
	for c := range s.Candidates(mustConfig(t, "/project", envscan.MatchAllPattern, ".env")) {
		got = append(got, c)
	}
	require.Len(t, got, 1)
	assert.Equal(t, "/project/svc/api", filepath.ToSlash(got[0].Dir))
	assert.Equal(t, "prod.env", got[0].Name)
}

func TestCandidates_VerboseLogsFilteredDirectories(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("web/.env", "")
	var buf bytes.Buffer
	s := NewScannerWithFS(fs, logging.NewConsoleLoggerTo(&buf, true))

	got := collect(t, s, mustConfig(t, "/project", "api", ".env"))
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "does not match pattern")
}

func TestCandidates_OSRelativeRoot(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{".env", "svc/api/.env", "svc/web/notes.txt"} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("A=1\n"), 0644))
	}
	t.Chdir(root)

	s := NewScanner(logging.NewNullLogger())
	got := collect(t, s, mustConfig(t, ".", envscan.MatchAllPattern, ".env"))

	assert.Equal(t, []string{".env", "svc/api/.env"}, got)
}

func TestCandidates_OSDotRootPatternSeesDotPrefix(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"api/.env", "web/.env", "web/api/.env"} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("A=1\n"), 0644))
	}
	t.Chdir(root)

	s := NewScanner(logging.NewNullLogger())

	tests := []struct {
		pattern string
		want    []string
	}{
		{`^\./api`, []string{"api/.env"}},
		{"/api", []string{"api/.env", "web/api/.env"}},
		{`^\.$`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(t, s, mustConfig(t, ".", tt.pattern, ".env")))
		})
	}
}

func TestCandidates_OSTrailingSeparatorRoot(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "services", "api", ".env")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte("A=1\n"), 0644))
	t.Chdir(root)

	s := NewScanner(logging.NewNullLogger())
	got := collect(t, s, mustConfig(t, "services/", "^services/api$", ".env"))

	assert.Equal(t, []string{"services/api/.env"}, got)
}

func TestCandidates_OSSymlinkedDirectoryIsNotACandidate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges")
	}

	root := t.TempDir()
	for _, name := range []string{"api/.env", "real/.env"} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("A=1\n"), 0644))
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linked.env")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real", ".env"), filepath.Join(root, "file-link.env")))

	s := NewScanner(logging.NewNullLogger())
	got := collect(t, s, mustConfig(t, root, envscan.MatchAllPattern, ".env"))

	assert.Equal(t, []string{
		filepath.ToSlash(filepath.Join(root, "api", ".env")),
		filepath.ToSlash(filepath.Join(root, "file-link.env")),
		filepath.ToSlash(filepath.Join(root, "real", ".env")),
	}, got)
}

func TestCandidates_OSSkipsUnreadableDirectories(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	for _, name := range []string{"locked/.env", "open/.env"} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("A=1\n"), 0644))
	}
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	s := NewScanner(logging.NewNullLogger())
	got := collect(t, s, mustConfig(t, root, envscan.MatchAllPattern, ".env"))

	assert.Equal(t, []string{filepath.ToSlash(filepath.Join(root, "open", ".env"))}, got)
}
