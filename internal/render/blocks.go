package render

import (
	"image"
	"strings"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/identicon"
)

// Blocks renders the pixel map as a 5x5 grid of terminal characters, two
// columns per cell. With ansi set, filled cells are drawn as coloured blocks
// and empty cells as spaces; otherwise filled cells are "##" and empty cells
// "..".
func Blocks(fill colour.RGB, rects []image.Rectangle, ansi bool) string {
	var filled [identicon.GridCells]bool
	for _, r := range rects {
		col := r.Min.X / identicon.CellSize
		row := r.Min.Y / identicon.CellSize
		if col < 0 || col >= identicon.GridSide || row < 0 || row >= identicon.GridSide {
			continue
		}
		filled[row*identicon.GridSide+col] = true
	}

	var sb strings.Builder
	for row := 0; row < identicon.GridSide; row++ {
		for col := 0; col < identicon.GridSide; col++ {
			on := filled[row*identicon.GridSide+col]
			switch {
			case on && ansi:
				sb.WriteString(colour.ColourPreview(fill, 2))
			case on:
				sb.WriteString("##")
			case ansi:
				sb.WriteString("  ")
			default:
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
