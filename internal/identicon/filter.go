package identicon

import (
	"slices"

	"github.com/jmylchreest/identicon/internal/colour"
)

// Filtered is the pipeline stage holding only the visible cells.
type Filtered struct {
	seed Seed
	rgb  colour.RGB
	grid []Cell
}

// FilterOdd drops every cell with an odd value. Order and the original cell
// indices are preserved.
func (g Gridded) FilterOdd() Filtered {
	visible := make([]Cell, 0, len(g.grid))
	for _, cell := range g.grid {
		if cell.Visible() {
			visible = append(visible, cell)
		}
	}
	return Filtered{seed: g.seed, rgb: g.rgb, grid: visible}
}

// Seed returns the seed.
func (f Filtered) Seed() Seed {
	return f.seed
}

// RGB returns the fill colour.
func (f Filtered) RGB() colour.RGB {
	return f.rgb
}

// Cells returns a copy of the visible cells.
func (f Filtered) Cells() []Cell {
	return slices.Clone(f.grid)
}

// Descriptor returns a snapshot of the stage.
func (f Filtered) Descriptor() Descriptor {
	d := newDescriptor(StageFiltered, f.seed)
	d.RGB = &f.rgb
	d.Grid = f.Cells()
	return d
}
