// Package buffer implements the byte editing engine behind hexhog.
//
// A Session owns the data, a cursor offset in [0, Len()] (Len() being the
// append slot), an optional selection, a clipboard, and linear undo/redo
// history. Data is only mutated by applying a Change (Edit, Insert, Delete),
// so every mutation except the untracked append path is reversible.
//
// Offsets map to a fixed grid of RowWidth bytes per row. Navigation and
// deletion clamp instead of failing; the only errors come from file I/O.
package buffer
