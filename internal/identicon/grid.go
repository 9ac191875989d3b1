package identicon

import (
	"slices"

	"github.com/jmylchreest/identicon/internal/colour"
)

// Gridded is the pipeline stage holding the full, mirrored 5x5 grid.
type Gridded struct {
	seed Seed
	rgb  colour.RGB
	grid []Cell
}

// BuildGrid expands the seed into 25 cells. The seed is split into five rows
// of three bytes, each row is mirrored to five bytes, and the final leftover
// seed byte is ignored.
func (c Coloured) BuildGrid() Gridded {
	return Gridded{
		seed: c.seed,
		rgb:  c.rgb,
		grid: Cells(c.seed[:]),
	}
}

// Cells builds a flat, indexed grid from arbitrary seed bytes. Trailing bytes
// that do not fill a complete row are dropped, so a 16 byte seed gives 25
// cells and shorter inputs give fewer.
func Cells(values []uint8) []Cell {
	rows := Chunk(values)
	cells := make([]Cell, 0, len(rows)*GridSide)
	for _, row := range rows {
		for _, v := range MirrorRow(row) {
			cells = append(cells, Cell{Value: v, Index: len(cells)})
		}
	}
	return cells
}

// Chunk splits values into consecutive groups of three, discarding an
// incomplete trailing group.
func Chunk(values []uint8) [][rowWidth]uint8 {
	rows := make([][rowWidth]uint8, 0, len(values)/rowWidth)
	for i := 0; i+rowWidth <= len(values); i += rowWidth {
		rows = append(rows, [rowWidth]uint8(values[i:i+rowWidth]))
	}
	return rows
}

// MirrorRow reflects a three byte row around its last element: [a b c] becomes
// [a b c b a].
func MirrorRow(row [rowWidth]uint8) [GridSide]uint8 {
	return [GridSide]uint8{row[0], row[1], row[2], row[1], row[0]}
}

// Seed returns the seed.
func (g Gridded) Seed() Seed {
	return g.seed
}

// RGB returns the fill colour.
func (g Gridded) RGB() colour.RGB {
	return g.rgb
}

// Cells returns a copy of the full grid.
func (g Gridded) Cells() []Cell {
	return slices.Clone(g.grid)
}

// Descriptor returns a snapshot of the stage.
func (g Gridded) Descriptor() Descriptor {
	d := newDescriptor(StageGridded, g.seed)
	d.RGB = &g.rgb
	d.Grid = g.Cells()
	return d
}
