// Package editor provides a Bubble Tea hex editor component backed by the
// buffer package.
//
// The package is responsible for key and mouse handling, grid rendering
// (offset column, hex cells, character column), scroll-follow, the help
// popup, and host integration hooks (system clipboard, change events,
// logging).
package editor
