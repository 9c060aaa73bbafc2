package visualize

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/palette"
)

// Renderer draws a grid.Grid as a block of colored terminal cells, one
// space character per grid cell styled with its palette background color.
type Renderer struct {
	Palette palette.Palette
}

// NewRenderer builds a Renderer over the given palette.
func NewRenderer(p palette.Palette) *Renderer {
	return &Renderer{Palette: p}
}

// Frame renders g as a newline-separated block, row-major, one styled
// space per cell.
func (r *Renderer) Frame(g *grid.Grid) string {
	var b strings.Builder
	g.Each(func(x, y int, sym grid.Symbol) {
		if x == 0 && y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.styleFor(sym).Render(" "))
	})
	return b.String()
}

func (r *Renderer) styleFor(sym grid.Symbol) lipgloss.Style {
	c := r.Palette.Lookup(sym)
	hex := fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}

// TerminalSize reports the terminal's columns and rows for file descriptor
// fd, falling back to 80x24 when the size cannot be determined — the same
// fallback the original renderer used when terminal_size() returned None.
func TerminalSize(fd int) (width, height int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

// FPSMeter counts how many updates occurred in the trailing one-second
// window, the Go equivalent of the original implementation's
// UpdatesCounter.
type FPSMeter struct {
	mu    sync.Mutex
	start time.Time
	times []time.Time
}

// NewFPSMeter starts a meter with its clock running from now.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{start: time.Now()}
}

// Tick records one update and returns the update count over the trailing
// second, evicting entries older than that window first.
func (f *FPSMeter) Tick() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Second)
	kept := f.times[:0]
	for _, t := range f.times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	f.times = append(kept, now)
	return len(f.times)
}

// Elapsed reports how long the meter has been running.
func (f *FPSMeter) Elapsed() time.Duration {
	return time.Since(f.start)
}
