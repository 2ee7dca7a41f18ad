// Package cli implements the envscan command tree: findenvs, getvalues and
// version, plus the flag plumbing they share.
package cli
