// Package identicon derives a small, symmetric pixel grid from an arbitrary string.
//
// Generation is a fixed linear pipeline. Each stage is a method on the value
// returned by the previous stage, so stages cannot be skipped or reordered:
//
//	Hash(input).PickColour().BuildGrid().FilterOdd().MapPixels()
//
// Every stage is a pure function over immutable values and is safe to call
// concurrently for different inputs.
package identicon

import (
	"crypto/md5" // #nosec G501 -- MD5 is the fixed seed derivation, not a security boundary
	"image"
)

const (
	// SeedSize is the number of bytes in a seed (the MD5 digest size).
	SeedSize = md5.Size
	// GridSide is the number of cells along each side of the grid.
	GridSide = 5
	// GridCells is the number of cells in a complete grid.
	GridCells = GridSide * GridSide
	// CellSize is the width and height of a single cell in pixels.
	CellSize = 50
	// CanvasSize is the width and height of the full identicon in pixels.
	CanvasSize = GridSide * CellSize

	// rowWidth is the number of seed bytes consumed per grid row.
	rowWidth = 3
)

// Seed is the digest every other stage is derived from.
type Seed [SeedSize]uint8

// Cell is a single grid entry. Index is the position in the full 5x5 grid and
// is kept unchanged when the grid is filtered.
type Cell struct {
	Value uint8 `json:"value"`
	Index int   `json:"index"`
}

// Visible reports whether the cell is drawn.
func (c Cell) Visible() bool {
	return c.Value%2 == 0
}

// Row returns the row of the cell in the grid.
func (c Cell) Row() int {
	return c.Index / GridSide
}

// Col returns the column of the cell in the grid.
func (c Cell) Col() int {
	return c.Index % GridSide
}

// Generate runs every stage of the pipeline for input.
func Generate(input string) Mapped {
	return Hash(input).PickColour().BuildGrid().FilterOdd().MapPixels()
}

// CanvasBounds returns the rectangle covering the full identicon.
func CanvasBounds() image.Rectangle {
	return image.Rect(0, 0, CanvasSize, CanvasSize)
}
