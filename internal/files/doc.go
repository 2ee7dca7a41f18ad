// Package files groups the file-related sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: lazy discovery of candidate env files under a root
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/envscan/internal/files/filesystem"
//	    "github.com/vvka-141/envscan/internal/files/scanner"
//	)
//
//	cfg, err := envscan.NewSearchConfig(".", "*", ".env")
//	s := scanner.NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
//	for file := range s.Candidates(cfg) {
//	    fmt.Println(file.Path)
//	}
package files
