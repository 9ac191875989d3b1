package identicon

import (
	"fmt"
	"image"
	"slices"

	"github.com/jmylchreest/identicon/internal/colour"
)

// Mapped is the final pipeline stage: every visible cell has a pixel region.
type Mapped struct {
	seed   Seed
	rgb    colour.RGB
	grid   []Cell
	pixels []image.Rectangle
}

// MapPixels converts each visible cell into the square it covers on the
// canvas. Rectangles are in the same order as the visible cells.
func (f Filtered) MapPixels() Mapped {
	pixels := make([]image.Rectangle, len(f.grid))
	for i, cell := range f.grid {
		pixels[i] = CellRect(cell.Index)
	}
	return Mapped{seed: f.seed, rgb: f.rgb, grid: f.grid, pixels: pixels}
}

// CellRect returns the square covered by the cell at index. It panics if index
// is not a position in the grid.
func CellRect(index int) image.Rectangle {
	if index < 0 || index >= GridCells {
		panic(fmt.Sprintf("identicon: cell index %d outside 0..%d", index, GridCells-1))
	}
	x := (index % GridSide) * CellSize
	y := (index / GridSide) * CellSize
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// Seed returns the seed.
func (m Mapped) Seed() Seed {
	return m.seed
}

// RGB returns the fill colour.
func (m Mapped) RGB() colour.RGB {
	return m.rgb
}

// Cells returns a copy of the visible cells.
func (m Mapped) Cells() []Cell {
	return slices.Clone(m.grid)
}

// Rects returns a copy of the pixel map.
func (m Mapped) Rects() []image.Rectangle {
	return slices.Clone(m.pixels)
}

// Descriptor returns a snapshot of the stage.
func (m Mapped) Descriptor() Descriptor {
	d := newDescriptor(StageMapped, m.seed)
	d.RGB = &m.rgb
	d.Grid = m.Cells()
	d.PixelMap = make([]Corners, len(m.pixels))
	for i, r := range m.pixels {
		d.PixelMap[i] = Corners{{r.Min.X, r.Min.Y}, {r.Max.X, r.Max.Y}}
	}
	return d
}
