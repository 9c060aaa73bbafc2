// Package visualize renders a grid.Grid to an ANSI terminal.
//
// What: a thin, optional consumer of grid.Grid and palette.Palette — it
// never imports grid/pattern/ruletree/match internals beyond grid's public
// read surface, and nothing in the core imports it back.
//
// Why: supplemented from the original implementation's render-between-
// steps example loop (examples/visualize/mod.rs), adapted to lipgloss
// styling and golang.org/x/term sizing instead of raw CSI escape strings.
package visualize
