package identicon

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/identicon/internal/colour"
)

// Stage names a point in the pipeline.
type Stage string

// Pipeline stages in the order they run.
const (
	StageSeeded   Stage = "seeded"
	StageColoured Stage = "coloured"
	StageGridded  Stage = "gridded"
	StageFiltered Stage = "filtered"
	StageMapped   Stage = "mapped"
)

// Corners holds the top-left and bottom-right corners of a pixel region as
// [[x0, y0], [x1, y1]].
type Corners [2][2]int

// Descriptor is a flat snapshot of a pipeline stage, used for inspection and
// JSON output. Fields the stage has not populated yet are nil.
type Descriptor struct {
	Stage    Stage       `json:"stage"`
	Seed     []int       `json:"seed"`
	RGB      *colour.RGB `json:"rgb,omitzero"`
	Grid     []Cell      `json:"grid,omitzero"`
	PixelMap []Corners   `json:"pixel_map,omitzero"`
}

func newDescriptor(stage Stage, seed Seed) Descriptor {
	values := make([]int, len(seed))
	for i, b := range seed {
		values[i] = int(b)
	}
	return Descriptor{Stage: stage, Seed: values}
}

// ToJSON converts the descriptor to indented JSON.
func (d Descriptor) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// String renders the descriptor as human-readable text.
func (d Descriptor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "stage:     %s\n", d.Stage)
	fmt.Fprintf(&sb, "seed:      %v\n", d.Seed)
	if d.RGB != nil {
		fmt.Fprintf(&sb, "rgb:       %s %s\n", d.RGB.String(), d.RGB.Hex())
	}
	if d.Grid != nil {
		cells := make([]string, len(d.Grid))
		for i, c := range d.Grid {
			cells[i] = fmt.Sprintf("(%d,%d)", c.Value, c.Index)
		}
		fmt.Fprintf(&sb, "grid:      %d cells %s\n", len(d.Grid), strings.Join(cells, " "))
	}
	if d.PixelMap != nil {
		rects := make([]string, len(d.PixelMap))
		for i, r := range d.PixelMap {
			rects[i] = fmt.Sprintf("((%d,%d),(%d,%d))", r[0][0], r[0][1], r[1][0], r[1][1])
		}
		fmt.Fprintf(&sb, "pixel_map: %d rects %s\n", len(d.PixelMap), strings.Join(rects, " "))
	}
	return sb.String()
}
