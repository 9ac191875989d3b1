package identicon

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDescriptorStages(t *testing.T) {
	seeded := Hash("Chris")
	coloured := seeded.PickColour()
	gridded := coloured.BuildGrid()
	filtered := gridded.FilterOdd()
	mapped := filtered.MapPixels()

	tests := []struct {
		name     string
		d        Descriptor
		stage    Stage
		hasRGB   bool
		gridLen  int
		pixelLen int
	}{
		{name: "seeded", d: seeded.Descriptor(), stage: StageSeeded, gridLen: -1, pixelLen: -1},
		{name: "coloured", d: coloured.Descriptor(), stage: StageColoured, hasRGB: true, gridLen: -1, pixelLen: -1},
		{name: "gridded", d: gridded.Descriptor(), stage: StageGridded, hasRGB: true, gridLen: 25, pixelLen: -1},
		{name: "filtered", d: filtered.Descriptor(), stage: StageFiltered, hasRGB: true, gridLen: 17, pixelLen: -1},
		{name: "mapped", d: mapped.Descriptor(), stage: StageMapped, hasRGB: true, gridLen: 17, pixelLen: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.d.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", tt.d.Stage, tt.stage)
			}
			if len(tt.d.Seed) != SeedSize || tt.d.Seed[0] != 148 {
				t.Errorf("Seed = %v", tt.d.Seed)
			}
			if (tt.d.RGB != nil) != tt.hasRGB {
				t.Errorf("RGB set = %v, want %v", tt.d.RGB != nil, tt.hasRGB)
			}
			if tt.gridLen < 0 && tt.d.Grid != nil {
				t.Errorf("Grid should be unset, got %d cells", len(tt.d.Grid))
			}
			if tt.gridLen >= 0 && len(tt.d.Grid) != tt.gridLen {
				t.Errorf("Grid has %d cells, want %d", len(tt.d.Grid), tt.gridLen)
			}
			if tt.pixelLen < 0 && tt.d.PixelMap != nil {
				t.Errorf("PixelMap should be unset, got %d rects", len(tt.d.PixelMap))
			}
			if tt.pixelLen >= 0 && len(tt.d.PixelMap) != tt.pixelLen {
				t.Errorf("PixelMap has %d rects, want %d", len(tt.d.PixelMap), tt.pixelLen)
			}
		})
	}
}

func TestDescriptorJSON(t *testing.T) {
	data, err := Generate("Chris").Descriptor().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	var decoded struct {
		Stage    string `json:"stage"`
		Seed     []int  `json:"seed"`
		RGB      *struct{ R, G, B int }
		PixelMap [][2][2]int `json:"pixel_map"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if decoded.Stage != "mapped" {
		t.Errorf("stage = %q, want mapped", decoded.Stage)
	}
	if decoded.RGB == nil || decoded.RGB.R != 148 || decoded.RGB.G != 79 || decoded.RGB.B != 172 {
		t.Errorf("rgb = %+v, want 148/79/172", decoded.RGB)
	}
	last := decoded.PixelMap[len(decoded.PixelMap)-1]
	if last != [2][2]int{{200, 200}, {250, 250}} {
		t.Errorf("last pixel_map entry = %v", last)
	}

	seedOnly, err := Hash("Chris").Descriptor().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}
	for _, field := range []string{`"rgb"`, `"grid"`, `"pixel_map"`} {
		if strings.Contains(string(seedOnly), field) {
			t.Errorf("seed-only descriptor JSON contains %s: %s", field, seedOnly)
		}
	}
}

func TestDescriptorString(t *testing.T) {
	s := Generate("Chris").Descriptor().String()
	for _, want := range []string{"stage:     mapped", "#944fac", "(148,0)", "((200,200),(250,250))", "17 rects"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
