// Package report renders finder and extractor results as plain text (paths
// or a value/files table) or as JSON or YAML documents.
package report
