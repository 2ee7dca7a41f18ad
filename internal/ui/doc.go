// Package ui holds the terminal presentation helpers: the color palette,
// renderer-bound styles and the --color decision.
package ui
