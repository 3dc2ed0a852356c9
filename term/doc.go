// Package term runs a cellbloom scene in a terminal with tcell.
//
// Each terminal cell covers 4x8 scene pixels and is drawn as an upper half
// block, so one cell shows two 4x4 pixel squares: the foreground colors the
// top square and the background the bottom one. With the default cell size
// of 4, every automaton cell maps to exactly one half block.
package term
